package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrsuite/attendance-backend-go/internal/domain/timing"
	"github.com/hrsuite/attendance-backend-go/internal/handler/http/response"
)

type TimingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timingHandlerImpl struct {
	timingService timing.OfficeTimingService
}

func NewTimingHandler(timingService timing.OfficeTimingService) TimingHandler {
	return &timingHandlerImpl{
		timingService: timingService,
	}
}

// Create implements TimingHandler.
func (h *timingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timing.CreateTimingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timingService.CreateTiming(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office timing created", result)
}

// Update implements TimingHandler.
func (h *timingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timing.UpdateTimingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "timingID")

	result, err := h.timingService.UpdateTiming(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office timing updated", result)
}

// Get implements TimingHandler.
func (h *timingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.timingService.GetTiming(r.Context(), chi.URLParam(r, "timingID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TimingHandler.
func (h *timingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.timingService.ListTimings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements TimingHandler.
func (h *timingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timingService.DeleteTiming(r.Context(), chi.URLParam(r, "timingID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office timing deleted", nil)
}
