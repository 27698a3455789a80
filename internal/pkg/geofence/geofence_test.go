package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testConfig = Config{
	Center:       Coordinate{Latitude: 18.4649, Longitude: 73.8678},
	RadiusMeters: 100,
	Boundary: []Coordinate{
		{Latitude: 18.4640, Longitude: 73.8660},
		{Latitude: 18.4640, Longitude: 73.8700},
		{Latitude: 18.4670, Longitude: 73.8700},
		{Latitude: 18.4670, Longitude: 73.8660},
	},
	AccuracyTolerance: 150,
}

func floatPtr(v float64) *float64 { return &v }

func TestValidate_InsideRadius(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(testConfig)

	// ~30m east of center
	decision := e.Validate(Coordinate{Latitude: 18.4649, Longitude: 73.8681}, nil)

	assert.True(t, decision.Accepted)
	assert.Equal(t, ReasonVerified, decision.Reason)
}

func TestValidate_AtCenter(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(testConfig)

	decision := e.Validate(testConfig.Center, nil)

	assert.True(t, decision.Accepted)
}

func TestValidate_InsidePolygonOutsideRadius(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(testConfig)

	// Inside the rectangle but ~200m from center, so the radius check fails
	// and containment comes from the polygon fallback.
	decision := e.Validate(Coordinate{Latitude: 18.4666, Longitude: 73.8690}, nil)

	assert.True(t, decision.Accepted)
	assert.Equal(t, ReasonVerified, decision.Reason)
}

func TestValidate_OutsideEverything(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(testConfig)

	// A few kilometers away, good accuracy
	decision := e.Validate(Coordinate{Latitude: 18.5200, Longitude: 73.9000}, floatPtr(20))

	assert.False(t, decision.Accepted)
	assert.Equal(t, ReasonOutside, decision.Reason)
}

func TestValidate_OutsideWithPoorAccuracy(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(testConfig)

	// Same point, but the device reports >150m accuracy: the fix itself is
	// not trustworthy, so the check-in is accepted with a warning reason.
	decision := e.Validate(Coordinate{Latitude: 18.5200, Longitude: 73.9000}, floatPtr(300))

	assert.True(t, decision.Accepted)
	assert.Equal(t, ReasonLowPrecision, decision.Reason)
}

func TestValidate_AccuracyExactlyAtThresholdRejects(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(testConfig)

	decision := e.Validate(Coordinate{Latitude: 18.5200, Longitude: 73.9000}, floatPtr(150))

	assert.False(t, decision.Accepted)
}

func TestValidate_MissingCoordinate(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(testConfig)

	decision := e.Validate(Coordinate{}, nil)

	assert.False(t, decision.Accepted)
	assert.Equal(t, ReasonIncomplete, decision.Reason)
}

func TestValidate_NoBoundaryConfigured(t *testing.T) {
	t.Parallel()
	cfg := testConfig
	cfg.Boundary = nil
	e := NewEvaluator(cfg)

	decision := e.Validate(Coordinate{Latitude: 18.4666, Longitude: 73.8690}, floatPtr(10))

	assert.False(t, decision.Accepted)
}

func TestHaversineDistance(t *testing.T) {
	t.Parallel()

	// Same point
	assert.InDelta(t, 0, HaversineDistance(18.4649, 73.8678, 18.4649, 73.8678), 0.001)

	// One degree of latitude is ~111.19 km
	d := HaversineDistance(18.0, 73.8678, 19.0, 73.8678)
	assert.InDelta(t, 111195, d, 200)
}

func TestPointInPolygon_HorizontalEdge(t *testing.T) {
	t.Parallel()

	// Degenerate polygon with a horizontal edge at the query latitude must
	// not blow up and must still classify the point.
	polygon := []Coordinate{
		{Latitude: 10, Longitude: 0},
		{Latitude: 10, Longitude: 10},
		{Latitude: 20, Longitude: 10},
		{Latitude: 20, Longitude: 0},
	}

	assert.True(t, pointInPolygon(Coordinate{Latitude: 15, Longitude: 5}, polygon))
	assert.False(t, pointInPolygon(Coordinate{Latitude: 15, Longitude: 15}, polygon))
	assert.False(t, pointInPolygon(Coordinate{Latitude: 25, Longitude: 5}, polygon))
}
