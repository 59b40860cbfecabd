package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/kelolahr/attendance-backend-go/internal/domain/report"
	"github.com/kelolahr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MyPeriodStats(w http.ResponseWriter, r *http.Request)
	MyMonthStats(w http.ResponseWriter, r *http.Request)
	MyMonthlySummary(w http.ResponseWriter, r *http.Request)
	EmployeeMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// employeeIDFromClaims reads the caller's own employee identity.
func employeeIDFromClaims(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	return employeeID, ok && employeeID != ""
}

// MyPeriodStats implements ReportHandler.
func (h *reportHandlerImpl) MyPeriodStats(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.BadRequest(w, "No employee profile linked to this account", nil)
		return
	}

	stats, err := h.reportService.PeriodStats(
		r.Context(), employeeID,
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// MyMonthStats implements ReportHandler.
func (h *reportHandlerImpl) MyMonthStats(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.BadRequest(w, "No employee profile linked to this account", nil)
		return
	}

	stats, err := h.reportService.MonthStats(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// MyMonthlySummary implements ReportHandler.
func (h *reportHandlerImpl) MyMonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.BadRequest(w, "No employee profile linked to this account", nil)
		return
	}

	summary, err := h.reportService.MonthlySummary(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// EmployeeMonthlySummary implements ReportHandler. Admin only, routed with
// an explicit employee ID.
func (h *reportHandlerImpl) EmployeeMonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	summary, err := h.reportService.MonthlySummary(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
