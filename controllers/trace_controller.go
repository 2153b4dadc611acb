package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"cablepathapi/pkg/logger"
	"cablepathapi/services"
	"cablepathapi/utils"

	"github.com/gin-gonic/gin"
)

var traceSrv = services.NewTraceService()

// SetTraceService initializes the trace service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetTraceService(s services.TraceService) {
	traceSrv = s
}

// TraceTermination traces the cable path from a termination
// @Summary Trace cable path from a termination
// @Description Walks the physical connectivity graph from the given termination, crossing cables, front/rear port pairings and circuits, until the far-end endpoint is reached or the path ends
// @Tags Trace
// @Accept json
// @Produce json
// @Param id path int true "Termination ID"
// @Success 200 {object} TraceResultResponse "Trace result"
// @Failure 400 {object} StandardErrorResponse "Invalid termination ID"
// @Failure 404 {object} StandardErrorResponse "Termination not found"
// @Router /api/queries/trace/terminations/{id} [get]
func traceTermination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	termID, err := utils.SafeIntToUint(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Debugf("Tracing path from termination %d", id)
	result, err := traceSrv.TraceTermination(c.Request.Context(), termID)
	if err != nil {
		logger.Errorf("Failed to trace termination %d: %v", id, err)
		utils.ErrorResponseWithStatus(c, http.StatusNotFound, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// ListTraceRuns lists recent trace audit records
// @Summary List trace runs
// @Description Lists recent trace audit records, optionally filtered by termination
// @Tags Trace
// @Accept json
// @Produce json
// @Param termination_id query int false "Filter by termination ID"
// @Param limit query int false "Maximum records to return (default: 50)"
// @Success 200 {object} TraceRunListResponse "Trace runs"
// @Failure 400 {object} StandardErrorResponse "Invalid query parameters"
// @Router /api/queries/trace/runs [get]
func listTraceRuns(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err == nil && parsed < 1 {
			err = fmt.Errorf("limit must be a positive integer, got %q", limitStr)
		}
		if err != nil {
			logger.Warnf("Invalid limit parameter: %s", limitStr)
			utils.ErrorResponse(c, err)
			return
		}
		limit = parsed
	}

	if termStr := c.Query("termination_id"); termStr != "" {
		parsed, err := strconv.Atoi(termStr)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		termID, err := utils.SafeIntToUint(parsed)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		runs, err := traceSrv.ListRunsByTermination(c.Request.Context(), termID, limit)
		if err != nil {
			logger.Errorf("Failed to list trace runs for termination %d: %v", termID, err)
			utils.ErrorResponse(c, err)
			return
		}
		utils.JSONResponse(c, http.StatusOK, runs)
		return
	}

	runs, err := traceSrv.ListRecentRuns(c.Request.Context(), limit)
	if err != nil {
		logger.Errorf("Failed to list trace runs: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, runs)
}

// RegisterTraceRoutes registers HTTP endpoints for cable path tracing.
func RegisterTraceRoutes(rg *gin.RouterGroup) {
	trace := rg.Group("/trace")
	{
		trace.GET("/terminations/:id", traceTermination)
		trace.GET("/runs", listTraceRuns)
	}
}
