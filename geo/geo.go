// Package geo computes great-circle distances between points given in
// decimal degrees.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// MilesPerKm converts kilometres to statute miles.
const MilesPerKm = 0.621371

// ErrInvalidCoordinate indicates a latitude or longitude outside its range.
var ErrInvalidCoordinate = errors.New("geo: coordinate out of range")

// Coordinate is a (latitude, longitude) pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Validate checks Lat ∈ [-90, 90] and Lon ∈ [-180, 180]. NaN fails both.
func (c Coordinate) Validate() error {
	if !(c.Lat >= -90 && c.Lat <= 90) {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, c.Lat)
	}
	if !(c.Lon >= -180 && c.Lon <= 180) {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, c.Lon)
	}

	return nil
}

// String renders the coordinate as "lat,lon".
func (c Coordinate) String() string {
	return fmt.Sprintf("%.3f,%.3f", c.Lat, c.Lon)
}

// Haversine returns the great-circle distance between a and b in miles.
// The result is symmetric, non-negative and zero for identical points.
func Haversine(a, b Coordinate) float64 {
	return HaversineKm(a, b) * MilesPerKm
}

// Distance validates both coordinates and returns the Haversine distance
// between them in miles.
func Distance(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	return Haversine(a, b), nil
}

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b Coordinate) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
