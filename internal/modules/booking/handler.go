package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoloc/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) List(c *gin.Context) {
	role := c.DefaultQuery("role", "customer")
	bookings, err := h.service.List(c.Request.Context(), c.GetString("user_id"), role)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or vehicle not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not a party to this booking")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "End date must be after start date")
	case ErrSelfBooking:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "You cannot book your own vehicle")
	case ErrInvalidTransition:
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition not allowed")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Vehicle is not available for these dates")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
