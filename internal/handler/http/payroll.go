package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kelolahr/attendance-backend-go/internal/domain/payroll"
	"github.com/kelolahr/attendance-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MyPayslip(w http.ResponseWriter, r *http.Request)
	EmployeePayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// MyPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) MyPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.BadRequest(w, "No employee profile linked to this account", nil)
		return
	}

	payslip, err := h.payrollService.Payslip(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip)
}

// EmployeePayslip implements PayrollHandler. Admin only.
func (h *payrollHandlerImpl) EmployeePayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	payslip, err := h.payrollService.Payslip(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip)
}
