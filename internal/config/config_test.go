package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoundary(t *testing.T) {
	vertices, err := ParseBoundary("18.4640,73.8660; 18.4640,73.8700; 18.4670,73.8680")
	require.NoError(t, err)
	require.Len(t, vertices, 3)
	assert.Equal(t, 18.4640, vertices[0][0])
	assert.Equal(t, 73.8700, vertices[1][1])
}

func TestParseBoundaryEmpty(t *testing.T) {
	vertices, err := ParseBoundary("")
	require.NoError(t, err)
	assert.Empty(t, vertices)
}

func TestParseBoundaryTooFewVertices(t *testing.T) {
	_, err := ParseBoundary("18.4,73.8;18.5,73.9")
	assert.Error(t, err)
}

func TestParseBoundaryMalformedVertex(t *testing.T) {
	_, err := ParseBoundary("18.4;18.5,73.9;18.6,73.8")
	assert.Error(t, err)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, 150.0, cfg.Geofence.AccuracyTolerance)
	assert.Equal(t, "09:30", cfg.OfficeTiming.DefaultStartTime)
	assert.Equal(t, "18:00", cfg.OfficeTiming.DefaultEndTime)
	assert.Equal(t, 15, cfg.OfficeTiming.DefaultGraceMinutes)
	assert.Contains(t, cfg.DatabaseURL(), "postgres://")
}
