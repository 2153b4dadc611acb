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

var terminationSrv = services.NewTerminationService()

// SetTerminationService initializes the termination service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetTerminationService(s services.TerminationService) {
	terminationSrv = s
}

// ListTerminations lists all terminations
// @Summary List terminations
// @Description Lists all terminations of all kinds
// @Tags Terminations
// @Accept json
// @Produce json
// @Success 200 {object} TerminationListResponse "Terminations"
// @Router /api/queries/terminations [get]
func listTerminations(c *gin.Context) {
	terms, err := terminationSrv.GetAll(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list terminations: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, terms)
}

// GetTermination returns one termination
// @Summary Get termination
// @Description Returns a single termination by ID
// @Tags Terminations
// @Accept json
// @Produce json
// @Param id path int true "Termination ID"
// @Success 200 {object} TerminationItem "Termination"
// @Failure 404 {object} StandardErrorResponse "Termination not found"
// @Router /api/queries/terminations/{id} [get]
func getTermination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	term, err := terminationSrv.GetByID(c.Request.Context(), utils.MustIntToUint(id))
	if err != nil {
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, term)
}

// CreateTermination creates a new termination
// @Summary Create termination
// @Description Creates a new termination attached to a device, or to a circuit side for circuit terminations
// @Tags Terminations
// @Accept json
// @Produce json
// @Param termination body TerminationCreateRequest true "Termination object"
// @Success 201 {object} CreatedResponse "Termination created successfully"
// @Failure 400 {object} StandardErrorResponse "Invalid request body or validation error"
// @Router /api/queries/terminations [post]
func createTermination(c *gin.Context) {
	var data models.Termination
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Creating termination: %s %s", data.Kind, data.Name)
	newObj, err := terminationSrv.Create(c.Request.Context(), data)
	if err != nil {
		logger.Errorf("Failed to create termination %s: %v", data.Name, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Termination was created successfully",
		"id":      newObj.ID,
	})
}

// RenameTermination renames a termination
// @Summary Rename termination
// @Description Changes the name of an existing termination. Kind and parent are immutable
// @Tags Terminations
// @Accept json
// @Produce json
// @Param id path int true "Termination ID"
// @Param params body TerminationRenameRequest true "New name"
// @Success 200 {object} MessageResponse "Termination renamed successfully"
// @Failure 400 {object} StandardErrorResponse "Invalid request"
// @Failure 404 {object} StandardErrorResponse "Termination not found"
// @Router /api/queries/terminations/{id} [put]
func renameTermination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	var params struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := utils.ValidateStruct(&params); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if _, err := terminationSrv.Rename(c.Request.Context(), utils.MustIntToUint(id), params.Name); err != nil {
		logger.Errorf("Failed to rename termination %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Termination was renamed successfully",
	})
}

// DeleteTermination deletes a termination
// @Summary Delete termination
// @Description Deletes a termination that is not cabled and not paired
// @Tags Terminations
// @Accept json
// @Produce json
// @Param id path int true "Termination ID"
// @Success 200 {object} MessageResponse "Termination deleted successfully"
// @Failure 400 {object} StandardErrorResponse "Termination still cabled or paired"
// @Failure 404 {object} StandardErrorResponse "Termination not found"
// @Router /api/queries/terminations/{id} [delete]
func deleteTermination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Deleting termination with ID: %d", id)
	if err := terminationSrv.Delete(c.Request.Context(), utils.MustIntToUint(id)); err != nil {
		logger.Errorf("Failed to delete termination %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Termination was deleted successfully",
	})
}

// RegisterTerminationRoutes registers HTTP endpoints for termination management operations.
func RegisterTerminationRoutes(rg *gin.RouterGroup) {
	terminations := rg.Group("/terminations")
	{
		terminations.GET("", listTerminations)
		terminations.GET("/:id", getTermination)
		terminations.POST("", createTermination)
		terminations.PUT("/:id", renameTermination)
		terminations.DELETE("/:id", deleteTermination)
	}
}
