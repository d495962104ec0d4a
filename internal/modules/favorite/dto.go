package favorite

type ToggleRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}
