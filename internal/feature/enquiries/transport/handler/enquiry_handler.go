// Package handler provides the HTTP handlers for the enquiries feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authentity "recruit_backend/internal/feature/auth/domain/entity"
	"recruit_backend/internal/feature/enquiries/domain/entity"
	"recruit_backend/internal/feature/enquiries/transport/http/dto"
	"recruit_backend/internal/feature/enquiries/usecase"
	jwtmw "recruit_backend/internal/platform/jwt"
)

// EnquiryUsecase defines the enquiry operations consumed by this handler.
type EnquiryUsecase interface {
	Submit(ctx context.Context, e *entity.Enquiry) error
	List(ctx context.Context, filter usecase.Filter) ([]entity.Enquiry, error)
	UpdateStatus(ctx context.Context, id uint, status entity.Status) (*entity.Enquiry, error)
}

// EnquiryHandler handles HTTP requests for enquiries.
type EnquiryHandler struct {
	enquiries EnquiryUsecase
}

// NewEnquiryHandler creates a new EnquiryHandler instance.
func NewEnquiryHandler(enquiries EnquiryUsecase) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// Create accepts a public form submission.
// Binding covers the always-required fields; the usecase enforces the
// candidate document rule and surfaces it as a 400.
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req dto.CreateEnquiryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("enquiry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &entity.Enquiry{
		Type:         entity.Type(req.Type),
		Subject:      req.Subject,
		Name:         req.Name,
		Email:        req.Email,
		Message:      req.Message,
		Company:      req.Company,
		Priority:     req.Priority,
		Experience:   req.Experience,
		DocumentName: req.DocumentName,
		DocumentData: req.DocumentData,
	}
	if err := h.enquiries.Submit(c.Request.Context(), e); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("enquiry intake failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("enquiry received", "enquiry_id", e.ID, "type", e.Type, "reference", e.Reference)
	c.JSON(http.StatusCreated, dto.SubmitRes{
		Success:   true,
		Message:   "enquiry received",
		Reference: e.Reference,
	})
}

// List serves enquiries to authenticated users.
// Administrators may filter by email and type; everyone else is always
// scoped to their own email (the "my applications" view).
func (h *EnquiryHandler) List(c *gin.Context) {
	filter := usecase.Filter{
		Email: c.Query("email"),
		Type:  entity.Type(c.Query("type")),
	}
	if jwtmw.RoleFromContext(c) != authentity.RoleAdmin {
		filter.Email = jwtmw.EmailFromContext(c)
		filter.Type = ""
	}

	enquiries, err := h.enquiries.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("enquiry listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if enquiries == nil {
		enquiries = []entity.Enquiry{}
	}

	c.JSON(http.StatusOK, enquiries)
}

// UpdateStatus moves an enquiry through its lifecycle. Admin-only.
func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enquiry, err := h.enquiries.UpdateStatus(c.Request.Context(), uint(id), entity.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEnquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "enquiry not found"})
		case errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrStatusFinal):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("status update failed", "error", err, "enquiry_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	slog.Info("enquiry status updated", "enquiry_id", id, "status", enquiry.Status, "user_id", jwtmw.UserIDFromContext(c))
	c.JSON(http.StatusOK, enquiry)
}
