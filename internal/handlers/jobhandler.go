package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/staffing-crm/internal/dtos"
	"github.com/justsurfingit/staffing-crm/internal/services"
)

type JobRequirementHandler struct {
	JobService *services.JobRequirementService
}

func NewJobRequirementHandler(j *services.JobRequirementService) *JobRequirementHandler {
	return &JobRequirementHandler{JobService: j}
}

// CreateJobRequirement is POST /job-requirements. The job identifier is
// allocated server side.
func (h *JobRequirementHandler) CreateJobRequirement(c *gin.Context) {
	var req dtos.JobRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.JobService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newJobRequirementView(*job))
}

func (h *JobRequirementHandler) ListJobRequirements(c *gin.Context) {
	var f dtos.ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	jobs, err := h.JobService.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapViews(jobs, newJobRequirementView))
}

func (h *JobRequirementHandler) GetJobRequirement(c *gin.Context) {
	job, err := h.JobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newJobRequirementView(*job))
}

func (h *JobRequirementHandler) UpdateJobRequirement(c *gin.Context) {
	var req dtos.JobRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, err := h.JobService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newJobRequirementView(*job))
}

func (h *JobRequirementHandler) DeleteJobRequirement(c *gin.Context) {
	if err := h.JobService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// NextJobID is GET /job-requirements/next-id?title=. It previews the
// identifier a create would receive right now; nothing is reserved.
func (h *JobRequirementHandler) NextJobID(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	id, err := h.JobService.PreviewID(c.Request.Context(), title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job_id":   id.String(),
		"category": id.Code,
		"sequence": id.Sequence,
	})
}
