package vehicle

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autoloc/internal/pkg/response"
	"autoloc/internal/pkg/validator"
	"autoloc/internal/repository"
)

const maxPhotoBytes = 10 << 20 // per file

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.Search)
	rg.GET("/vehicles/:id", h.GetByID)
	rg.GET("/vehicles/:id/availability", h.ListAvailability)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/vehicles", h.Create)
	rg.PUT("/vehicles/:id", h.Update)
	rg.DELETE("/vehicles/:id", h.Delete)
	rg.POST("/vehicles/:id/availability", h.SetAvailability)
	rg.POST("/vehicles/:id/photos", h.AddPhotos)
}

func (h *Handler) Search(c *gin.Context) {
	f := repository.VehicleFilters{
		Type:      c.Query("type"),
		OwnerID:   c.Query("ownerId"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	if v := c.Query("minPrice"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MinPrice = n
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MaxPrice = n
		}
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	radius, radErr := strconv.ParseFloat(c.Query("radius"), 64)
	if latErr == nil && lngErr == nil && radErr == nil && radius > 0 {
		f.HasGeo = true
		f.Lat = lat
		f.Lng = lng
		f.Radius = radius
	}

	vehicles, err := h.service.Search(c.Request.Context(), f)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search filters")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) GetByID(c *gin.Context) {
	v, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.Validate(req); fields != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), c.GetString("user_type"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"vehicle": v})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListAvailability(c *gin.Context) {
	slots, err := h.service.ListAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates and action are required")
		return
	}

	slots, err := h.service.SetAvailability(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) AddPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Multipart form required")
		return
	}

	fileHeaders := form.File["photos"]
	if len(fileHeaders) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No photos provided")
		return
	}

	files := make([][]byte, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if fh.Size > maxPhotoBytes {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Photo too large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable photo")
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable photo")
			return
		}
		files = append(files, data)
	}

	photos, err := h.service.AddPhotos(c.Request.Context(), c.Param("id"), c.GetString("user_id"), files)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"photos": photos})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this vehicle")
	case ErrOwnerOnly:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only owners can create vehicles")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payload")
	case ErrTooManyPhotos:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Maximum 10 photos per vehicle")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
