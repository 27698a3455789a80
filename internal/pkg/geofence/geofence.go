package geofence

import (
	"math"
)

// Decision reasons surfaced to the caller; reason strings are user-visible.
const (
	ReasonIncomplete   = "location data is incomplete"
	ReasonVerified     = "location verified"
	ReasonLowPrecision = "accepted despite low GPS precision"
	ReasonOutside      = "you must be within the allowed work area to check in"
)

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Config describes one allowed work area. Injected, not hardcoded, so each
// deployment (or site) can carry its own fence.
type Config struct {
	Center            Coordinate
	RadiusMeters      float64
	Boundary          []Coordinate // optional polygon, 3+ vertices
	AccuracyTolerance float64      // meters; reported accuracy above this is treated as noise
}

type Decision struct {
	Accepted bool
	Reason   string
}

type Evaluator struct {
	cfg Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Validate decides whether the coordinate lies inside the allowed work area.
// Order matters: radius first, polygon as fallback, then the consumer-GPS
// accuracy tolerance. A zero coordinate is treated as missing data, matching
// what browsers send when geolocation is denied.
func (e *Evaluator) Validate(coord Coordinate, accuracy *float64) Decision {
	if coord.Latitude == 0 && coord.Longitude == 0 {
		return Decision{Accepted: false, Reason: ReasonIncomplete}
	}

	distance := HaversineDistance(
		coord.Latitude, coord.Longitude,
		e.cfg.Center.Latitude, e.cfg.Center.Longitude,
	)
	if distance <= e.cfg.RadiusMeters {
		return Decision{Accepted: true, Reason: ReasonVerified}
	}

	if len(e.cfg.Boundary) >= 3 && pointInPolygon(coord, e.cfg.Boundary) {
		return Decision{Accepted: true, Reason: ReasonVerified}
	}

	if accuracy != nil && *accuracy > e.cfg.AccuracyTolerance {
		return Decision{Accepted: true, Reason: ReasonLowPrecision}
	}

	return Decision{Accepted: false, Reason: ReasonOutside}
}

// HaversineDistance returns the great-circle distance between two
// coordinates in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // meters

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// pointInPolygon runs a standard ray cast eastwards from the point and counts
// edge crossings. The epsilon keeps horizontal edges from dividing by zero.
func pointInPolygon(p Coordinate, polygon []Coordinate) bool {
	const epsilon = 1e-12

	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := polygon[i], polygon[j]
		if (vi.Latitude > p.Latitude) == (vj.Latitude > p.Latitude) {
			continue
		}
		dLat := vj.Latitude - vi.Latitude
		if math.Abs(dLat) < epsilon {
			continue
		}
		crossLon := vi.Longitude + (p.Latitude-vi.Latitude)*(vj.Longitude-vi.Longitude)/dLat
		if p.Longitude < crossLon {
			inside = !inside
		}
	}
	return inside
}
