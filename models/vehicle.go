package models

// VehicleStatus represents the operational state of a fleet vehicle
type VehicleStatus string

const (
	VehicleStatusActive     VehicleStatus = "active"
	VehicleStatusInShop     VehicleStatus = "in_shop"
	VehicleStatusOutOfFleet VehicleStatus = "out_of_fleet"
)

// Vehicle is a fleet vehicle as served by the vehicle microservice. The
// mileage here is roster display data only; schedule projection never reads
// it because this layer has no live odometer feed.
type Vehicle struct {
	ID             string        `json:"id"`
	Plate          string        `json:"plate"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	Year           int           `json:"year"`
	Status         VehicleStatus `json:"status"`
	CurrentMileage int           `json:"current_mileage"`
}
