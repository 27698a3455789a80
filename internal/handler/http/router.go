package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsuite/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/jwt"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/metrics"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	timingHandler TimingHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/check-in", attendanceHandler.CheckIn)
			r.Post("/check-out", attendanceHandler.CheckOut)
			r.Get("/my/{userID}", attendanceHandler.GetMyAttendance)
			r.Get("/{attendanceID}", attendanceHandler.GetAttendance)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/attendance/today", attendanceHandler.GetTodayRecords)
			r.Get("/attendance/today-status", attendanceHandler.GetTodayStatus)
			r.Get("/attendance/summary", reportHandler.GetSummary)

			r.Route("/office-timings", func(r chi.Router) {
				r.Get("/", timingHandler.List)
				r.Post("/", timingHandler.Create)
				r.Get("/{timingID}", timingHandler.Get)
				r.Put("/{timingID}", timingHandler.Update)
				r.Delete("/{timingID}", timingHandler.Delete)
			})
		})
	})
	return r
}
