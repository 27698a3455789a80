package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hrsuite/attendance-backend-go/internal/domain/attendance"
	"github.com/hrsuite/attendance-backend-go/internal/handler/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	checkInResp  attendance.AttendanceResponse
	checkInErr   error
	checkOutResp attendance.AttendanceResponse
	checkOutErr  error
	getResp      attendance.AttendanceResponse
	getErr       error
}

func (s *stubAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	return s.checkInResp, s.checkInErr
}

func (s *stubAttendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	return s.checkOutResp, s.checkOutErr
}

func (s *stubAttendanceService) GetAttendance(ctx context.Context, attendanceID string) (attendance.AttendanceResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubAttendanceService) GetTodayStatus(ctx context.Context, department *string) (attendance.TodayStatusResponse, error) {
	return attendance.TodayStatusResponse{Date: "2025-06-02"}, nil
}

func (s *stubAttendanceService) GetMyAttendance(ctx context.Context, userID string, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{}, nil
}

func (s *stubAttendanceService) GetTodayRecords(ctx context.Context) (attendance.TodayRecordsResponse, error) {
	return attendance.TodayRecordsResponse{}, nil
}

func newAttendanceRouter(svc attendance.AttendanceService) *chi.Mux {
	handler := NewAttendanceHandler(svc)
	r := chi.NewRouter()
	r.Post("/check-in", handler.CheckIn)
	r.Post("/check-out", handler.CheckOut)
	r.Get("/today-status", handler.GetTodayStatus)
	r.Get("/{attendanceID}", handler.GetAttendance)
	return r
}

func TestCheckInHandlerSuccess(t *testing.T) {
	svc := &stubAttendanceService{
		checkInResp: attendance.AttendanceResponse{
			AttendanceID: "att-1",
			Status:       "Checked In",
		},
	}
	router := newAttendanceRouter(svc)

	body, _ := json.Marshal(attendance.CheckInRequest{
		UserID:     "u1",
		Coordinate: attendance.CoordinatePayload{Latitude: 18.4649, Longitude: 73.8678},
	})
	req := httptest.NewRequest(http.MethodPost, "/check-in", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Check-in successful", resp.Message)
}

func TestCheckInHandlerDuplicateReturnsOK(t *testing.T) {
	svc := &stubAttendanceService{
		checkInResp: attendance.AttendanceResponse{
			AttendanceID:     "att-1",
			Status:           "Checked In",
			AlreadyCheckedIn: true,
		},
	}
	router := newAttendanceRouter(svc)

	body, _ := json.Marshal(attendance.CheckInRequest{
		UserID:     "u1",
		Coordinate: attendance.CoordinatePayload{Latitude: 18.4649, Longitude: 73.8678},
	})
	req := httptest.NewRequest(http.MethodPost, "/check-in", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Already checked in today", resp.Message)
}

func TestCheckInHandlerRejectsMalformedBody(t *testing.T) {
	router := newAttendanceRouter(&stubAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/check-in", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInHandlerOutsideArea(t *testing.T) {
	svc := &stubAttendanceService{checkInErr: attendance.ErrOutsideAllowedArea}
	router := newAttendanceRouter(svc)

	body, _ := json.Marshal(attendance.CheckInRequest{
		UserID:     "u1",
		Coordinate: attendance.CoordinatePayload{Latitude: 1, Longitude: 1},
	})
	req := httptest.NewRequest(http.MethodPost, "/check-in", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
}

func TestCheckOutHandlerNoActiveSession(t *testing.T) {
	svc := &stubAttendanceService{checkOutErr: attendance.ErrNotCheckedIn}
	router := newAttendanceRouter(svc)

	body, _ := json.Marshal(attendance.CheckOutRequest{
		UserID:     "u1",
		Coordinate: attendance.CoordinatePayload{Latitude: 18.4649, Longitude: 73.8678},
	})
	req := httptest.NewRequest(http.MethodPost, "/check-out", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "No active check-in found for today", resp.Error.Message)
}

func TestGetAttendanceHandlerNotFound(t *testing.T) {
	svc := &stubAttendanceService{getErr: attendance.ErrAttendanceNotFound}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/att-missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAttendanceHandlerSuccess(t *testing.T) {
	svc := &stubAttendanceService{
		getResp: attendance.AttendanceResponse{AttendanceID: "att-1", Status: "Checked Out"},
	}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/att-1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestTodayStatusHandler(t *testing.T) {
	router := newAttendanceRouter(&stubAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/today-status?department=Engineering", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
