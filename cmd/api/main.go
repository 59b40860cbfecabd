package main

import (
	"fmt"
	"net/http"

	"github.com/kelolahr/attendance-backend-go/internal/config"
	"github.com/kelolahr/attendance-backend-go/internal/domain/payroll"
	"github.com/kelolahr/attendance-backend-go/internal/domain/shift"
	appHTTP "github.com/kelolahr/attendance-backend-go/internal/handler/http"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/clock"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/database"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/jwt"
	"github.com/kelolahr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kelolahr/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/kelolahr/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/kelolahr/attendance-backend-go/internal/service/dashboard"
	payrollService "github.com/kelolahr/attendance-backend-go/internal/service/payroll"
	reportService "github.com/kelolahr/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	systemClock := clock.NewSystemClock()
	shiftPolicy := shift.NewPolicy()

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, shiftPolicy, systemClock)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, systemClock)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, employeeRepo, payroll.RatesFromConfig(cfg.Payroll), systemClock)
	cohortSvc := dashboardService.NewCohortService(attendanceRepo, employeeRepo, systemClock)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(cohortSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		reportHandler,
		payrollHandler,
		dashboardHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
