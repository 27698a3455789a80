package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Attendance counters
var (
	CheckIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendance_check_ins_total",
		Help: "Number of successful check-ins.",
	})

	CheckOuts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendance_check_outs_total",
		Help: "Number of successful check-outs.",
	})

	GeofenceRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendance_geofence_rejections_total",
		Help: "Number of check-in/out attempts rejected by the geofence.",
	})
)

// Geocoder cache counters
var (
	GeocodeCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geocode_cache_hits_total",
		Help: "Reverse-geocode lookups served from the TTL cache.",
	})

	GeocodeCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geocode_cache_misses_total",
		Help: "Reverse-geocode lookups that went to the upstream service.",
	})

	GeocodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geocode_failures_total",
		Help: "Reverse-geocode lookups that failed and fell back to a placeholder.",
	})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
