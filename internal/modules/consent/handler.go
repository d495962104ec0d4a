package consent

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoloc/internal/domain"
	"autoloc/internal/pkg/response"
)

type ConsentRepository interface {
	Create(ctx context.Context, c *domain.Consent) error
	ListByUser(ctx context.Context, userID string) ([]domain.Consent, error)
}

type Handler struct {
	repo ConsentRepository
}

func NewHandler(repo ConsentRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/consent", h.List)
	rg.POST("/consent", h.Record)
}

// Record appends a consent acceptance. Records are immutable audit
// entries; repeated acceptances of new versions append new rows.
func (h *Handler) Record(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "type and version are required")
		return
	}

	record := &domain.Consent{
		UserID:  c.GetString("user_id"),
		Type:    domain.ConsentType(req.Type),
		Version: req.Version,
	}
	if err := h.repo.Create(c.Request.Context(), record); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record consent")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"consent": record})
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.repo.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list consents")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"consents": records})
}
