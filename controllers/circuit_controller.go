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

var circuitSrv = services.NewCircuitService()

// SetCircuitService initializes the circuit service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetCircuitService(s services.CircuitService) {
	circuitSrv = s
}

// ListCircuits lists all circuits
// @Summary List circuits
// @Description Lists all provider circuits
// @Tags Circuits
// @Accept json
// @Produce json
// @Success 200 {object} CircuitListResponse "Circuits"
// @Router /api/queries/circuits [get]
func listCircuits(c *gin.Context) {
	circuits, err := circuitSrv.GetAll(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list circuits: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, circuits)
}

// GetCircuit returns one circuit
// @Summary Get circuit
// @Description Returns a single circuit by ID
// @Tags Circuits
// @Accept json
// @Produce json
// @Param id path int true "Circuit ID"
// @Success 200 {object} CircuitItem "Circuit"
// @Failure 404 {object} StandardErrorResponse "Circuit not found"
// @Router /api/queries/circuits/{id} [get]
func getCircuit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	circuit, err := circuitSrv.GetByID(c.Request.Context(), utils.MustIntToUint(id))
	if err != nil {
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, circuit)
}

// GetCircuitTerminations lists terminations of a circuit
// @Summary List circuit terminations
// @Description Lists the terminations (at most one per side) of a circuit
// @Tags Circuits
// @Accept json
// @Produce json
// @Param id path int true "Circuit ID"
// @Success 200 {object} TerminationListResponse "Terminations"
// @Failure 404 {object} StandardErrorResponse "Circuit not found"
// @Router /api/queries/circuits/{id}/terminations [get]
func getCircuitTerminations(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	terms, err := circuitSrv.GetTerminations(c.Request.Context(), utils.MustIntToUint(id))
	if err != nil {
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, terms)
}

// CreateCircuit creates a new circuit
// @Summary Create circuit
// @Description Creates a new provider circuit
// @Tags Circuits
// @Accept json
// @Produce json
// @Param circuit body CircuitCreateRequest true "Circuit object"
// @Success 201 {object} CreatedResponse "Circuit created successfully"
// @Failure 400 {object} StandardErrorResponse "Invalid request body"
// @Router /api/queries/circuits [post]
func createCircuit(c *gin.Context) {
	var data models.Circuit
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Creating circuit: %s", data.CID)
	newObj, err := circuitSrv.Create(c.Request.Context(), data)
	if err != nil {
		logger.Errorf("Failed to create circuit %s: %v", data.CID, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Circuit was created successfully",
		"id":      newObj.ID,
	})
}

// DeleteCircuit deletes a circuit
// @Summary Delete circuit
// @Description Deletes a circuit that no longer owns terminations
// @Tags Circuits
// @Accept json
// @Produce json
// @Param id path int true "Circuit ID"
// @Success 200 {object} MessageResponse "Circuit deleted successfully"
// @Failure 400 {object} StandardErrorResponse "Circuit still owns terminations"
// @Failure 404 {object} StandardErrorResponse "Circuit not found"
// @Router /api/queries/circuits/{id} [delete]
func deleteCircuit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Deleting circuit with ID: %d", id)
	if err := circuitSrv.Delete(c.Request.Context(), utils.MustIntToUint(id)); err != nil {
		logger.Errorf("Failed to delete circuit %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Circuit was deleted successfully",
	})
}

// RegisterCircuitRoutes registers HTTP endpoints for circuit management operations.
func RegisterCircuitRoutes(rg *gin.RouterGroup) {
	circuits := rg.Group("/circuits")
	{
		circuits.GET("", listCircuits)
		circuits.GET("/:id", getCircuit)
		circuits.GET("/:id/terminations", getCircuitTerminations)
		circuits.POST("", createCircuit)
		circuits.DELETE("/:id", deleteCircuit)
	}
}
