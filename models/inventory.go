package models

import "github.com/shopspring/decimal"

// Part is a spare-part inventory record from the maintenance service
type Part struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PartNumber  string          `json:"part_number"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Supplier    string          `json:"supplier,omitempty"`
}

// LowStock reports whether the part has fallen to or below its minimum level.
func (p Part) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}

// Technician is a service-roster record from the maintenance service
type Technician struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Specialty   string `json:"specialty,omitempty"`
	IsAvailable bool   `json:"is_available"`
}
