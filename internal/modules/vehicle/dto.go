package vehicle

type CreateVehicleRequest struct {
	Name         string   `json:"name" binding:"required,min=2"`
	Type         string   `json:"type" binding:"required"`
	Description  string   `json:"description" binding:"max=2000"`
	PricePerDay  int64    `json:"price_per_day" binding:"required,min=100"`
	Address      string   `json:"address" binding:"required,min=2"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	AccessMethod string   `json:"access_method" binding:"max=500"`
}

// UpdateVehicleRequest is a partial update: nil fields stay untouched.
type UpdateVehicleRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2"`
	Type         *string  `json:"type"`
	Description  *string  `json:"description" binding:"omitempty,max=2000"`
	PricePerDay  *int64   `json:"price_per_day" binding:"omitempty,min=100"`
	Address      *string  `json:"address" binding:"omitempty,min=2"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	AccessMethod *string  `json:"access_method" binding:"omitempty,max=500"`
	IsActive     *bool    `json:"is_active"`
}

type AvailabilityRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=block unblock"`
}
