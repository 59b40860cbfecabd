package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kelolahr/attendance-backend-go/internal/handler/http/response"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/jwt"
)

// stubHandler satisfies every handler interface so the router can be
// wired without services behind it.
type stubHandler struct{}

func (stubHandler) Login(w http.ResponseWriter, _ *http.Request)            { response.Success(w, nil) }
func (stubHandler) CheckIn(w http.ResponseWriter, _ *http.Request)          { response.Success(w, nil) }
func (stubHandler) CheckOut(w http.ResponseWriter, _ *http.Request)         { response.Success(w, nil) }
func (stubHandler) StartBreak(w http.ResponseWriter, _ *http.Request)       { response.Success(w, nil) }
func (stubHandler) EndBreak(w http.ResponseWriter, _ *http.Request)         { response.Success(w, nil) }
func (stubHandler) BulkCheckIn(w http.ResponseWriter, _ *http.Request)      { response.Success(w, nil) }
func (stubHandler) GetMyAttendance(w http.ResponseWriter, _ *http.Request)  { response.Success(w, nil) }
func (stubHandler) MyPeriodStats(w http.ResponseWriter, _ *http.Request)    { response.Success(w, nil) }
func (stubHandler) MyMonthStats(w http.ResponseWriter, _ *http.Request)     { response.Success(w, nil) }
func (stubHandler) MyMonthlySummary(w http.ResponseWriter, _ *http.Request) { response.Success(w, nil) }
func (stubHandler) EmployeeMonthlySummary(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, nil)
}
func (stubHandler) MyPayslip(w http.ResponseWriter, _ *http.Request)       { response.Success(w, nil) }
func (stubHandler) EmployeePayslip(w http.ResponseWriter, _ *http.Request) { response.Success(w, nil) }
func (stubHandler) Summary(w http.ResponseWriter, _ *http.Request)         { response.Success(w, nil) }
func (stubHandler) ComprehensiveReport(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, nil)
}

func testRouter() http.Handler {
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	stub := stubHandler{}
	return NewRouter(jwtService, stub, stub, stub, stub, stub, "http://localhost:3000", "test")
}

func TestRouter_Heartbeat(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LoginIsPublic(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AttendanceRequiresToken(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
