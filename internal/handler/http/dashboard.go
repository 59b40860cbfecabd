package http

import (
	"net/http"

	"github.com/kelolahr/attendance-backend-go/internal/domain/report"
	"github.com/kelolahr/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	ComprehensiveReport(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	cohortService report.CohortService
}

func NewDashboardHandler(cohortService report.CohortService) DashboardHandler {
	return &dashboardHandlerImpl{
		cohortService: cohortService,
	}
}

// Summary implements DashboardHandler.
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cohortService.DashboardSummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ComprehensiveReport implements DashboardHandler.
func (h *dashboardHandlerImpl) ComprehensiveReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.cohortService.ComprehensiveReport(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
