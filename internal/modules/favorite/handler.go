package favorite

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoloc/internal/pkg/response"
	"autoloc/internal/repository"
)

type FavoriteRepository interface {
	Toggle(ctx context.Context, userID, vehicleID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]repository.FavoriteWithVehicle, error)
}

type Handler struct {
	repo FavoriteRepository
}

func NewHandler(repo FavoriteRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.List)
	rg.POST("/favorites", h.Toggle)
}

func (h *Handler) List(c *gin.Context) {
	favorites, err := h.repo.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list favorites")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorites": favorites})
}

// Toggle adds the vehicle to the user's favorites, or removes it when
// already present. Toggling twice is a no-op round trip.
func (h *Handler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "vehicle_id is required")
		return
	}

	favorited, err := h.repo.Toggle(c.Request.Context(), c.GetString("user_id"), req.VehicleID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle favorite")
		return
	}

	status := http.StatusOK
	if favorited {
		status = http.StatusCreated
	}
	response.Success(c, status, gin.H{"favorited": favorited})
}
