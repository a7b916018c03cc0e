// Package handler provides the HTTP handlers for the jobs feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authentity "recruit_backend/internal/feature/auth/domain/entity"
	"recruit_backend/internal/feature/jobs/domain/entity"
	"recruit_backend/internal/feature/jobs/transport/http/dto"
	"recruit_backend/internal/feature/jobs/usecase"
	jwtmw "recruit_backend/internal/platform/jwt"
)

// JobUsecase defines the job posting operations consumed by this handler.
type JobUsecase interface {
	List(ctx context.Context, includeArchived bool) ([]entity.Job, error)
	Create(ctx context.Context, job *entity.Job) error
	Archive(ctx context.Context, id uint, archived bool) (*entity.Job, error)
	Delete(ctx context.Context, id uint) error
}

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	jobs JobUsecase
}

// NewJobHandler creates a new JobHandler instance.
func NewJobHandler(jobs JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List serves the job listing.
// includeArchived is honored only for an authenticated administrator;
// everyone else always receives the public (non-archived) view.
func (h *JobHandler) List(c *gin.Context) {
	includeArchived := false
	if c.Query("includeArchived") == "true" && jwtmw.RoleFromContext(c) == authentity.RoleAdmin {
		includeArchived = true
	}

	jobs, err := h.jobs.List(c.Request.Context(), includeArchived)
	if err != nil {
		slog.Error("job listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if jobs == nil {
		jobs = []entity.Job{}
	}

	c.JSON(http.StatusOK, jobs)
}

// Create publishes a new posting. Admin-only (enforced by middleware).
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := &entity.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Industry:    req.Industry,
		Salary:      req.Salary,
		Description: req.Description,
	}
	if err := h.jobs.Create(c.Request.Context(), job); err != nil {
		slog.Error("job creation failed", "error", err, "title", req.Title)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("job posting created", "job_id", job.ID, "title", job.Title, "user_id", jwtmw.UserIDFromContext(c))
	c.JSON(http.StatusCreated, job)
}

// Archive toggles the archived flag on a posting. Admin-only.
func (h *JobHandler) Archive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ArchiveJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.Archive(c.Request.Context(), id, *req.IsArchived)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		slog.Error("job archive failed", "error", err, "job_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// Delete permanently removes a posting. Admin-only.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		slog.Error("job deletion failed", "error", err, "job_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("job posting deleted", "job_id", id, "user_id", jwtmw.UserIDFromContext(c))
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
