package controllers

import (
	"net/http"
	"strconv"

	"cablepathapi/pkg/logger"
	"cablepathapi/services/job"

	"github.com/gin-gonic/gin"
)

// TraceJobController handles bulk trace job API endpoints
type TraceJobController struct {
	bulkTrace *job.BulkTraceService
}

// NewTraceJobController creates a new TraceJobController
func NewTraceJobController() *TraceJobController {
	return &TraceJobController{
		bulkTrace: job.GetBulkTraceService(),
	}
}

// TraceJobResponse represents the API response for trace job operations
type TraceJobResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginatedTraceJobResponse represents paginated trace job response
type PaginatedTraceJobResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       interface{}         `json:"data"`
	Pagination *PaginationMetadata `json:"pagination,omitempty"`
}

// PaginationMetadata contains pagination information
type PaginationMetadata struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// StartDeviceTrace launches a bulk trace job for a device
// @Summary Start bulk trace for a device
// @Description Launches a background job that traces the cable path from every termination of the device
// @Tags trace-jobs
// @Accept json
// @Produce json
// @Param device_id path int true "Device ID"
// @Success 202 {object} TraceJobResponse
// @Failure 400 {object} TraceJobResponse
// @Router /api/jobs/devices/{device_id} [post]
func (tjc *TraceJobController) StartDeviceTrace(c *gin.Context) {
	deviceID, err := strconv.ParseUint(c.Param("device_id"), 10, 32)
	if err != nil {
		logger.Warnf("Invalid device_id format: %s", c.Param("device_id"))
		c.JSON(http.StatusBadRequest, TraceJobResponse{
			Success: false,
			Message: "Invalid device ID format",
		})
		return
	}

	jobID, err := tjc.bulkTrace.StartDeviceTrace(uint(deviceID))
	if err != nil {
		logger.Errorf("Failed to start bulk trace for device %d: %v", deviceID, err)
		c.JSON(http.StatusBadRequest, TraceJobResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	logger.Infof("Started bulk trace job %s for device %d", jobID, deviceID)
	c.JSON(http.StatusAccepted, TraceJobResponse{
		Success: true,
		Message: "Bulk trace job started",
		Data:    gin.H{"job_id": jobID},
	})
}

// GetJobStatus retrieves status of a specific job
// @Summary Get trace job status by ID
// @Description Get the current status and results of a bulk trace job
// @Tags trace-jobs
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} TraceJobResponse
// @Failure 400 {object} TraceJobResponse
// @Failure 404 {object} TraceJobResponse
// @Router /api/jobs/{job_id}/status [get]
func (tjc *TraceJobController) GetJobStatus(c *gin.Context) {
	jobID := c.Param("job_id")
	if jobID == "" {
		logger.Warnf("Empty job_id provided for job status check")
		c.JSON(http.StatusBadRequest, TraceJobResponse{
			Success: false,
			Message: "Job ID is required",
		})
		return
	}

	traceJob, exists := tjc.bulkTrace.GetJob(jobID)
	if !exists {
		logger.Warnf("Job not found: %s", jobID)
		c.JSON(http.StatusNotFound, TraceJobResponse{
			Success: false,
			Message: "Job not found",
		})
		return
	}

	logger.Debugf("Retrieved job status for %s: %s", jobID, traceJob.Status)
	c.JSON(http.StatusOK, TraceJobResponse{
		Success: true,
		Message: "Job status retrieved successfully",
		Data:    traceJob,
	})
}

// GetAllJobs retrieves status of all jobs with optional pagination
// @Summary Get all trace jobs status
// @Description Get the current status of all bulk trace jobs. Supports optional pagination via query parameters 'page' and 'page_size'
// @Tags trace-jobs
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-indexed, optional)"
// @Param page_size query int false "Number of items per page (optional, default: 10)"
// @Success 200 {object} PaginatedTraceJobResponse
// @Router /api/jobs/status [get]
func (tjc *TraceJobController) GetAllJobs(c *gin.Context) {
	// Use defaults to prevent invalid pagination that would return empty results
	page := 1
	pageSize := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		} else {
			logger.Warnf("Invalid page parameter: %s, using default: 1", pageStr)
		}
	}
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		if ps, err := strconv.Atoi(pageSizeStr); err == nil && ps > 0 {
			pageSize = ps
		} else {
			logger.Warnf("Invalid page_size parameter: %s, using default: 10", pageSizeStr)
		}
	}

	result := tjc.bulkTrace.GetAllJobsPaginated(page, pageSize)

	logger.Debugf("Retrieved %d jobs (page %d of %d, page_size=%d, total=%d)",
		len(result.Jobs), result.Page, result.TotalPages, result.PageSize, result.Total)

	c.JSON(http.StatusOK, PaginatedTraceJobResponse{
		Success: true,
		Message: "Jobs status retrieved successfully",
		Data:    result.Jobs,
		Pagination: &PaginationMetadata{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// GetJobsByDevice retrieves jobs for a specific device
// @Summary Get trace jobs by device ID
// @Description Get all bulk trace jobs associated with a specific device
// @Tags trace-jobs
// @Accept json
// @Produce json
// @Param device_id path int true "Device ID"
// @Success 200 {object} TraceJobResponse
// @Failure 400 {object} TraceJobResponse
// @Router /api/jobs/devices/{device_id}/status [get]
func (tjc *TraceJobController) GetJobsByDevice(c *gin.Context) {
	deviceID, err := strconv.ParseUint(c.Param("device_id"), 10, 32)
	if err != nil {
		logger.Warnf("Invalid device_id format: %s", c.Param("device_id"))
		c.JSON(http.StatusBadRequest, TraceJobResponse{
			Success: false,
			Message: "Invalid device ID format",
		})
		return
	}

	jobs := tjc.bulkTrace.GetJobsByDevice(uint(deviceID))

	logger.Debugf("Retrieved %d jobs for device %d", len(jobs), deviceID)
	c.JSON(http.StatusOK, TraceJobResponse{
		Success: true,
		Message: "Jobs status retrieved successfully",
		Data:    jobs,
	})
}

// DeleteJob removes a finished job
// @Summary Delete trace job
// @Description Remove a finished bulk trace job and its results
// @Tags trace-jobs
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} TraceJobResponse
// @Failure 400 {object} TraceJobResponse
// @Failure 404 {object} TraceJobResponse
// @Router /api/jobs/{job_id} [delete]
func (tjc *TraceJobController) DeleteJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if jobID == "" {
		logger.Warnf("Empty job_id provided for job deletion")
		c.JSON(http.StatusBadRequest, TraceJobResponse{
			Success: false,
			Message: "Job ID is required",
		})
		return
	}

	if _, exists := tjc.bulkTrace.GetJob(jobID); !exists {
		logger.Warnf("Attempted to delete non-existent job: %s", jobID)
		c.JSON(http.StatusNotFound, TraceJobResponse{
			Success: false,
			Message: "Job not found",
		})
		return
	}

	if err := tjc.bulkTrace.RemoveJob(jobID); err != nil {
		logger.Warnf("Failed to remove job %s: %v", jobID, err)
		c.JSON(http.StatusBadRequest, TraceJobResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	logger.Infof("Job %s removed", jobID)
	c.JSON(http.StatusOK, TraceJobResponse{
		Success: true,
		Message: "Job removed successfully",
	})
}

// RegisterTraceJobRoutes registers all bulk trace job routes
func RegisterTraceJobRoutes(router *gin.RouterGroup) {
	controller := NewTraceJobController()

	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.POST("/devices/:device_id", controller.StartDeviceTrace)
		jobRoutes.GET("/devices/:device_id/status", controller.GetJobsByDevice)
		jobRoutes.GET("/:job_id/status", controller.GetJobStatus)
		jobRoutes.GET("/status", controller.GetAllJobs)
		jobRoutes.DELETE("/:job_id", controller.DeleteJob)
	}
}
