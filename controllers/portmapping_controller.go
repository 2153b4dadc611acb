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

var portMappingSrv = services.NewPortMappingService()

// SetPortMappingService initializes the port mapping service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetPortMappingService(s services.PortMappingService) {
	portMappingSrv = s
}

// ListPortMappings lists front/rear port pairings
// @Summary List port pairings
// @Description Lists all front/rear port pairings, optionally filtered by rear port
// @Tags Port Pairings
// @Accept json
// @Produce json
// @Param rear_port_id query int false "Filter by rear port ID"
// @Param front_port_id query int false "Filter by front port ID"
// @Success 200 {object} PortMappingListResponse "Pairings"
// @Failure 400 {object} StandardErrorResponse "Invalid query parameters"
// @Router /api/queries/portmappings [get]
func listPortMappings(c *gin.Context) {
	if frontStr := c.Query("front_port_id"); frontStr != "" {
		frontID, err := strconv.Atoi(frontStr)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		mapping, err := portMappingSrv.GetByFrontPort(c.Request.Context(), utils.MustIntToUint(frontID))
		if err != nil {
			utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
			return
		}
		utils.JSONResponse(c, http.StatusOK, mapping)
		return
	}
	if rearStr := c.Query("rear_port_id"); rearStr != "" {
		rearID, err := strconv.Atoi(rearStr)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		mappings, err := portMappingSrv.GetByRearPort(c.Request.Context(), utils.MustIntToUint(rearID))
		if err != nil {
			logger.Errorf("Failed to list pairings of rear port %d: %v", rearID, err)
			utils.ErrorResponse(c, err)
			return
		}
		utils.JSONResponse(c, http.StatusOK, mappings)
		return
	}

	mappings, err := portMappingSrv.GetAll(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list pairings: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, mappings)
}

// CreatePortMapping pairs a front port with a rear port position
// @Summary Create port pairing
// @Description Pairs a front port with a position of a rear port on the same device
// @Tags Port Pairings
// @Accept json
// @Produce json
// @Param pairing body PortMappingCreateRequest true "Pairing object"
// @Success 201 {object} CreatedResponse "Pairing created successfully"
// @Failure 400 {object} StandardErrorResponse "Invalid request body or position already claimed"
// @Router /api/queries/portmappings [post]
func createPortMapping(c *gin.Context) {
	var data models.PortMapping
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Pairing front port %d to rear port %d position %d",
		data.FrontPortID, data.RearPortID, data.Position)
	newObj, err := portMappingSrv.Create(c.Request.Context(), data)
	if err != nil {
		logger.Errorf("Failed to create pairing: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Pairing was created successfully",
		"id":      newObj.ID,
	})
}

// DeletePortMapping removes a pairing
// @Summary Delete port pairing
// @Description Removes a front/rear port pairing
// @Tags Port Pairings
// @Accept json
// @Produce json
// @Param id path int true "Pairing ID"
// @Success 200 {object} MessageResponse "Pairing deleted successfully"
// @Failure 404 {object} StandardErrorResponse "Pairing not found"
// @Router /api/queries/portmappings/{id} [delete]
func deletePortMapping(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Deleting pairing with ID: %d", id)
	if err := portMappingSrv.Delete(c.Request.Context(), utils.MustIntToUint(id)); err != nil {
		logger.Errorf("Failed to delete pairing %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Pairing was deleted successfully",
	})
}

// RegisterPortMappingRoutes registers HTTP endpoints for port pairing operations.
func RegisterPortMappingRoutes(rg *gin.RouterGroup) {
	portmappings := rg.Group("/portmappings")
	{
		portmappings.GET("", listPortMappings)
		portmappings.POST("", createPortMapping)
		portmappings.DELETE("/:id", deletePortMapping)
	}
}
