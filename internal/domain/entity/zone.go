package entity

import (
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// DeliveryZone is a serviceable area with its fee and covered zip codes.
type DeliveryZone struct {
	Base
	Name        string            `json:"name"`
	ZipCodes    []string          `json:"zipCodes"`
	DeliveryFee float64           `json:"deliveryFee"`
	Boundary    *geojson.Geometry `json:"boundary,omitempty"`
	Status      Status            `json:"status"`
}

// AreaKm2 returns the geodesic area of the boundary, or 0 without one.
func (z *DeliveryZone) AreaKm2() float64 {
	if z.Boundary == nil || z.Boundary.Coordinates == nil {
		return 0
	}

	return geo.Area(z.Boundary.Geometry()) / 1e6
}

// ZipCode is a postal code the platform delivers to.
type ZipCode struct {
	Base
	Code   string `json:"zipCode"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zone   string `json:"zone"`
	Status Status `json:"status"`
}
