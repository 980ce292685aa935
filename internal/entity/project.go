package entity

import "time"

// Project is a marketed development (a gated layout of plots).
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	PlotStatusAvailable = "available"
	PlotStatusReserved  = "reserved"
	PlotStatusSold      = "sold"
)

var ValidPlotStatuses = map[string]bool{
	PlotStatusAvailable: true,
	PlotStatusReserved:  true,
	PlotStatusSold:      true,
}

type Plot struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	PlotNumber string    `json:"plotNumber"`
	AreaSqft   float64   `json:"areaSqft"`
	Price      int64     `json:"price"` // rupees
	Facing     string    `json:"facing,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
