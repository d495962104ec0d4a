package geocode

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoloc/internal/pkg/response"
)

// Geocoder is implemented by HereClient; tests substitute a fake.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Result, error)
	Autocomplete(ctx context.Context, query string) ([]Suggestion, error)
}

type Handler struct {
	client Geocoder
}

func NewHandler(client Geocoder) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/geocode", h.Lookup)
}

func (h *Handler) Lookup(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Parameter 'q' is required")
		return
	}

	mode := c.DefaultQuery("mode", "autocomplete")

	if mode == "geocode" {
		result, err := h.client.Geocode(c.Request.Context(), query)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "GEOCODE_FAILED", "Geocoding provider error")
			return
		}
		if result == nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No result for this query")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"result": result})
		return
	}

	suggestions, err := h.client.Autocomplete(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "GEOCODE_FAILED", "Geocoding provider error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"suggestions": suggestions})
}
