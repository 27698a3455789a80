package http

import (
	"net/http"

	"github.com/hrsuite/attendance-backend-go/internal/domain/report"
	"github.com/hrsuite/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetSummary implements ReportHandler.
func (h *reportHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	var filter report.SummaryFilter

	query := r.URL.Query()
	if date := query.Get("date"); date != "" {
		filter.Date = &date
	}
	if from := query.Get("from"); from != "" {
		filter.From = &from
	}
	if to := query.Get("to"); to != "" {
		filter.To = &to
	}
	if department := query.Get("department"); department != "" {
		filter.Department = &department
	}
	if userID := query.Get("user_id"); userID != "" {
		filter.UserID = &userID
	}

	result, err := h.reportService.GetSummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
