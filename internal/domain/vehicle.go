package domain

import "time"

type VehicleType string

const (
	VehicleCitadine   VehicleType = "citadine"
	VehicleBerline    VehicleType = "berline"
	VehicleSUV        VehicleType = "suv"
	VehicleUtilitaire VehicleType = "utilitaire"
	VehicleLuxe       VehicleType = "luxe"
	VehicleCabriolet  VehicleType = "cabriolet"
)

// VehicleTypes lists every accepted vehicle type, in display order.
var VehicleTypes = []VehicleType{
	VehicleCitadine,
	VehicleBerline,
	VehicleSUV,
	VehicleUtilitaire,
	VehicleLuxe,
	VehicleCabriolet,
}

func (t VehicleType) Valid() bool {
	for _, vt := range VehicleTypes {
		if t == vt {
			return true
		}
	}
	return false
}

// Vehicle is a listing owned by exactly one user. PricePerDay is in
// minor currency units (cents). Inactive vehicles are excluded from
// search but stay fetchable by id.
type Vehicle struct {
	ID           string      `json:"id"`
	OwnerID      string      `json:"owner_id"`
	Name         string      `json:"name"`
	Type         VehicleType `json:"type"`
	Description  string      `json:"description,omitempty"`
	PricePerDay  int64       `json:"price_per_day"`
	Address      string      `json:"address"`
	Lat          *float64    `json:"lat,omitempty"`
	Lng          *float64    `json:"lng,omitempty"`
	AccessMethod string      `json:"access_method,omitempty"`
	IsActive     bool        `json:"is_active"`
	Photos       []string    `json:"photos"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
