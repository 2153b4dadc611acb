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

var cableSrv = services.NewCableService()

// SetCableService initializes the cable service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetCableService(s services.CableService) {
	cableSrv = s
}

// ListCables lists all cables
// @Summary List cables
// @Description Lists all cables
// @Tags Cables
// @Accept json
// @Produce json
// @Success 200 {object} CableListResponse "Cables"
// @Router /api/queries/cables [get]
func listCables(c *gin.Context) {
	cables, err := cableSrv.GetAll(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list cables: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cables)
}

// GetCable returns one cable
// @Summary Get cable
// @Description Returns a single cable by ID
// @Tags Cables
// @Accept json
// @Produce json
// @Param id path int true "Cable ID"
// @Success 200 {object} CableItem "Cable"
// @Failure 404 {object} StandardErrorResponse "Cable not found"
// @Router /api/queries/cables/{id} [get]
func getCable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	cable, err := cableSrv.GetByID(c.Request.Context(), utils.MustIntToUint(id))
	if err != nil {
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cable)
}

// CreateCable creates a new cable
// @Summary Create cable
// @Description Connects two distinct unattached terminations with a cable
// @Tags Cables
// @Accept json
// @Produce json
// @Param cable body CableCreateRequest true "Cable object"
// @Success 201 {object} CreatedResponse "Cable created successfully"
// @Failure 400 {object} StandardErrorResponse "Invalid request body or an end is already attached"
// @Router /api/queries/cables [post]
func createCable(c *gin.Context) {
	var data models.Cable
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Creating cable between terminations %d and %d", data.TerminationAID, data.TerminationBID)
	newObj, err := cableSrv.Create(c.Request.Context(), data)
	if err != nil {
		logger.Errorf("Failed to create cable: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Cable was created successfully",
		"id":      newObj.ID,
	})
}

// UpdateCableStatus changes a cable's operational state
// @Summary Update cable status
// @Description Changes the operational state of a cable. Only connected cables are traceable
// @Tags Cables
// @Accept json
// @Produce json
// @Param id path int true "Cable ID"
// @Param params body CableStatusRequest true "New status"
// @Success 200 {object} MessageResponse "Cable status updated"
// @Failure 400 {object} StandardErrorResponse "Invalid status"
// @Failure 404 {object} StandardErrorResponse "Cable not found"
// @Router /api/queries/cables/{id}/status [put]
func updateCableStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	var params struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if _, err := cableSrv.UpdateStatus(c.Request.Context(), utils.MustIntToUint(id), params.Status); err != nil {
		logger.Errorf("Failed to update cable %d status: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Cable status was updated successfully",
	})
}

// DeleteCable disconnects a cable
// @Summary Delete cable
// @Description Removes a cable, leaving both former ends unattached
// @Tags Cables
// @Accept json
// @Produce json
// @Param id path int true "Cable ID"
// @Success 200 {object} MessageResponse "Cable deleted successfully"
// @Failure 404 {object} StandardErrorResponse "Cable not found"
// @Router /api/queries/cables/{id} [delete]
func deleteCable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Deleting cable with ID: %d", id)
	if err := cableSrv.Delete(c.Request.Context(), utils.MustIntToUint(id)); err != nil {
		logger.Errorf("Failed to delete cable %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Cable was deleted successfully",
	})
}

// RegisterCableRoutes registers HTTP endpoints for cable management operations.
func RegisterCableRoutes(rg *gin.RouterGroup) {
	cables := rg.Group("/cables")
	{
		cables.GET("", listCables)
		cables.GET("/:id", getCable)
		cables.POST("", createCable)
		cables.PUT("/:id/status", updateCableStatus)
		cables.DELETE("/:id", deleteCable)
	}
}
