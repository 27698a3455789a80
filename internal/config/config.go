package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	App          AppConfig
	JWT          JWTConfig
	Geofence     GeofenceConfig
	Geocoder     GeocoderConfig
	OfficeTiming OfficeTimingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// GeofenceConfig describes the allowed work area. The boundary polygon is
// optional; when present it is a secondary containment test after the
// radius check.
type GeofenceConfig struct {
	CenterLatitude    float64
	CenterLongitude   float64
	RadiusMeters      float64
	BoundaryVertices  string // "lat,lon;lat,lon;..." (3+ vertices, or empty)
	AccuracyTolerance float64
}

// GeocoderConfig configures the reverse-geocoding client.
type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	CacheTTL       time.Duration
	RequestsPerSec float64
}

// OfficeTimingConfig is the global fallback used when no policy row exists
// for a department.
type OfficeTimingConfig struct {
	DefaultStartTime    string // "15:04"
	DefaultEndTime      string // "15:04"
	DefaultGraceMinutes int
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments; env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Geofence configuration
	centerLat, err := strconv.ParseFloat(getEnv("GEOFENCE_CENTER_LAT", "18.4649"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_CENTER_LAT: %w", err)
	}
	centerLon, err := strconv.ParseFloat(getEnv("GEOFENCE_CENTER_LON", "73.8678"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_CENTER_LON: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_METERS", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_METERS: %w", err)
	}
	accuracyTolerance, err := strconv.ParseFloat(getEnv("GEOFENCE_ACCURACY_TOLERANCE_METERS", "150"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_ACCURACY_TOLERANCE_METERS: %w", err)
	}

	config.Geofence = GeofenceConfig{
		CenterLatitude:    centerLat,
		CenterLongitude:   centerLon,
		RadiusMeters:      radius,
		BoundaryVertices:  getEnv("GEOFENCE_BOUNDARY", ""),
		AccuracyTolerance: accuracyTolerance,
	}

	// Geocoder configuration
	geocoderTimeout, err := time.ParseDuration(getEnv("GEOCODER_TIMEOUT", "3s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODER_TIMEOUT: %w", err)
	}
	geocoderCacheTTL, err := time.ParseDuration(getEnv("GEOCODER_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODER_CACHE_TTL: %w", err)
	}
	geocoderRate, err := strconv.ParseFloat(getEnv("GEOCODER_REQUESTS_PER_SEC", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODER_REQUESTS_PER_SEC: %w", err)
	}

	config.Geocoder = GeocoderConfig{
		BaseURL:        getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent:      getEnv("GEOCODER_USER_AGENT", "attendance-backend-go"),
		Timeout:        geocoderTimeout,
		CacheTTL:       geocoderCacheTTL,
		RequestsPerSec: geocoderRate,
	}

	// Office timing fallback
	graceMinutes, err := strconv.Atoi(getEnv("OFFICE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_GRACE_MINUTES: %w", err)
	}

	config.OfficeTiming = OfficeTimingConfig{
		DefaultStartTime:    getEnv("OFFICE_START_TIME", "09:30"),
		DefaultEndTime:      getEnv("OFFICE_END_TIME", "18:00"),
		DefaultGraceMinutes: graceMinutes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Geofence.RadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must be positive")
	}
	if c.OfficeTiming.DefaultGraceMinutes < 0 {
		return fmt.Errorf("OFFICE_GRACE_MINUTES must not be negative")
	}
	if _, err := time.Parse("15:04", c.OfficeTiming.DefaultStartTime); err != nil {
		return fmt.Errorf("invalid OFFICE_START_TIME: %w", err)
	}
	if _, err := time.Parse("15:04", c.OfficeTiming.DefaultEndTime); err != nil {
		return fmt.Errorf("invalid OFFICE_END_TIME: %w", err)
	}
	if c.Geofence.BoundaryVertices != "" {
		if _, err := ParseBoundary(c.Geofence.BoundaryVertices); err != nil {
			return fmt.Errorf("invalid GEOFENCE_BOUNDARY: %w", err)
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// ParseBoundary parses a "lat,lon;lat,lon;..." polygon description.
func ParseBoundary(raw string) ([][2]float64, error) {
	parts := strings.Split(raw, ";")
	vertices := make([][2]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pair := strings.SplitN(part, ",", 2)
		if len(pair) != 2 {
			return nil, fmt.Errorf("vertex %q must be \"lat,lon\"", part)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(pair[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", part, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(pair[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", part, err)
		}
		vertices = append(vertices, [2]float64{lat, lon})
	}
	if len(vertices) > 0 && len(vertices) < 3 {
		return nil, fmt.Errorf("boundary needs at least 3 vertices, got %d", len(vertices))
	}
	return vertices, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
