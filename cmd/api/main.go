package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/config"
	appHTTP "github.com/hrsuite/attendance-backend-go/internal/handler/http"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/cron"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/database"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/geocode"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/geofence"
	"github.com/hrsuite/attendance-backend-go/internal/pkg/jwt"
	"github.com/hrsuite/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrsuite/attendance-backend-go/internal/service/attendance"
	reportService "github.com/hrsuite/attendance-backend-go/internal/service/report"
	timingService "github.com/hrsuite/attendance-backend-go/internal/service/timing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timingRepo := postgresql.NewOfficeTimingRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	boundaryVertices, err := config.ParseBoundary(cfg.Geofence.BoundaryVertices)
	if err != nil {
		log.Fatal("Invalid geofence boundary: ", err)
	}
	boundary := make([]geofence.Coordinate, 0, len(boundaryVertices))
	for _, v := range boundaryVertices {
		boundary = append(boundary, geofence.Coordinate{Latitude: v[0], Longitude: v[1]})
	}

	evaluator := geofence.NewEvaluator(geofence.Config{
		Center: geofence.Coordinate{
			Latitude:  cfg.Geofence.CenterLatitude,
			Longitude: cfg.Geofence.CenterLongitude,
		},
		RadiusMeters:      cfg.Geofence.RadiusMeters,
		Boundary:          boundary,
		AccuracyTolerance: cfg.Geofence.AccuracyTolerance,
	})

	geocoder := geocode.NewClient(geocode.Config{
		BaseURL:        cfg.Geocoder.BaseURL,
		UserAgent:      cfg.Geocoder.UserAgent,
		Timeout:        cfg.Geocoder.Timeout,
		CacheTTL:       cfg.Geocoder.CacheTTL,
		RequestsPerSec: cfg.Geocoder.RequestsPerSec,
	})

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	officeTimingService := timingService.NewOfficeTimingService(
		timingRepo,
		cfg.OfficeTiming.DefaultStartTime,
		cfg.OfficeTiming.DefaultEndTime,
		cfg.OfficeTiming.DefaultGraceMinutes,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		evaluator,
		geocoder,
		officeTimingService,
	)
	reportSvc := reportService.NewReportService(reportRepo, employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	timingHandler := appHTTP.NewTimingHandler(officeTimingService)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob(cron.NewGeocodeEvictionJob(geocoder))
	scheduler.AddJob(cron.NewSummarySnapshotJob(reportSvc))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App.Env, jwtService, attendanceHandler, timingHandler, reportHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running on port %d\n", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
