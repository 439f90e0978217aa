package main

import (
	"fmt"
	"net/http"

	"github.com/staffdesk/payroll-backend-go/internal/config"
	appHTTP "github.com/staffdesk/payroll-backend-go/internal/handler/http"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/staffdesk/payroll-backend-go/internal/service/payroll"
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
	defer db.Close()

	salaryRepo := postgresql.NewSalaryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceProvider := postgresql.NewAttendanceProvider(db)
	incentiveProvider := postgresql.NewIncentiveProvider(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	salaryService := payrollService.NewSalaryService(
		db,
		salaryRepo,
		employeeRepo,
		attendanceProvider,
		incentiveProvider,
		payrollService.Options{
			UpstreamTimeout:  cfg.Payroll.UpstreamTimeout,
			UpstreamRetries:  cfg.Payroll.UpstreamRetries,
			GenerateParallel: cfg.Payroll.GenerateParallel,
		},
	)

	payrollHandler := appHTTP.NewPayrollHandler(salaryService)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtService,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
