package controllers

import (
	"net/http"
	"strconv"

	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/services"
	"cablepathapi/utils"

	"github.com/gin-gonic/gin"
)

var deviceSrv = services.NewDeviceService()

// SetDeviceService initializes the device service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetDeviceService(s services.DeviceService) {
	deviceSrv = s
}

// ListDevices lists all devices
// @Summary List devices
// @Description Lists all registered devices
// @Tags Devices
// @Accept json
// @Produce json
// @Success 200 {object} DeviceListResponse "Devices"
// @Router /api/queries/devices [get]
func listDevices(c *gin.Context) {
	devices, err := deviceSrv.GetAll(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list devices: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, devices)
}

// GetDevice returns one device
// @Summary Get device
// @Description Returns a single device by ID
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} DeviceItem "Device"
// @Failure 404 {object} StandardErrorResponse "Device not found"
// @Router /api/queries/devices/{id} [get]
func getDevice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	device, err := deviceSrv.GetByID(c.Request.Context(), utils.MustIntToUint(id))
	if err != nil {
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, device)
}

// GetDeviceTerminations lists terminations of a device
// @Summary List device terminations
// @Description Lists all terminations owned by a device
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} TerminationListResponse "Terminations"
// @Failure 404 {object} StandardErrorResponse "Device not found"
// @Router /api/queries/devices/{id}/terminations [get]
func getDeviceTerminations(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	terms, err := deviceSrv.GetTerminations(c.Request.Context(), utils.MustIntToUint(id))
	if err != nil {
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, terms)
}

// CreateDevice creates a new device
// @Summary Create device
// @Description Creates a new device entry
// @Tags Devices
// @Accept json
// @Produce json
// @Param device body DeviceCreateRequest true "Device object"
// @Success 201 {object} CreatedResponse "Device created successfully"
// @Failure 400 {object} StandardErrorResponse "Invalid request body"
// @Router /api/queries/devices [post]
func createDevice(c *gin.Context) {
	var data models.Device
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Creating device: %s", data.Name)
	newObj, err := deviceSrv.Create(c.Request.Context(), data)
	if err != nil {
		logger.Errorf("Failed to create device %s: %v", data.Name, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Device was created successfully",
		"id":      newObj.ID,
	})
}

// UpdateDevice updates a device
// @Summary Update device
// @Description Updates an existing device by ID
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Param device body DeviceCreateRequest true "Device fields to update"
// @Success 200 {object} MessageResponse "Device updated successfully"
// @Failure 400 {object} StandardErrorResponse "Invalid request"
// @Failure 404 {object} StandardErrorResponse "Device not found"
// @Router /api/queries/devices/{id} [put]
func updateDevice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	var data models.Device
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if _, err := deviceSrv.Update(c.Request.Context(), utils.MustIntToUint(id), data); err != nil {
		logger.Errorf("Failed to update device %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Device was updated successfully",
	})
}

// DeleteDevice deletes a device
// @Summary Delete device
// @Description Deletes a device that no longer owns terminations
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path int true "Device ID"
// @Success 200 {object} MessageResponse "Device deleted successfully"
// @Failure 400 {object} StandardErrorResponse "Device still owns terminations"
// @Failure 404 {object} StandardErrorResponse "Device not found"
// @Router /api/queries/devices/{id} [delete]
func deleteDevice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Deleting device with ID: %d", id)
	if err := deviceSrv.Delete(c.Request.Context(), utils.MustIntToUint(id)); err != nil {
		logger.Errorf("Failed to delete device %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Device was deleted successfully",
	})
}

// RegisterDeviceRoutes registers HTTP endpoints for device management operations.
func RegisterDeviceRoutes(rg *gin.RouterGroup) {
	devices := rg.Group("/devices")
	{
		devices.GET("", listDevices)
		devices.GET("/:id", getDevice)
		devices.GET("/:id/terminations", getDeviceTerminations)
		devices.POST("", createDevice)
		devices.PUT("/:id", updateDevice)
		devices.DELETE("/:id", deleteDevice)
	}
}
