package main

import (
	"fmt"
	"net/http"

	"github.com/shairahamancsc/labourpro-backend-go/internal/config"
	appHTTP "github.com/shairahamancsc/labourpro-backend-go/internal/handler/http"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/database"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/facematch"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/jwt"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/oauth"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/payment"
	"github.com/shairahamancsc/labourpro-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shairahamancsc/labourpro-backend-go/internal/service/attendance"
	authService "github.com/shairahamancsc/labourpro-backend-go/internal/service/auth"
	labourerService "github.com/shairahamancsc/labourpro-backend-go/internal/service/labourer"
	loanService "github.com/shairahamancsc/labourpro-backend-go/internal/service/loan"
	payrollService "github.com/shairahamancsc/labourpro-backend-go/internal/service/payroll"
	settlementService "github.com/shairahamancsc/labourpro-backend-go/internal/service/settlement"
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

	labourerRepo := postgresql.NewLabourerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	supervisorRepo := postgresql.NewSupervisorRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	faceMatchService := facematch.NewClient(cfg.FaceMatch)
	paymentClient := payment.NewClient(cfg.Xendit)

	authSvc := authService.NewAuthService(db, supervisorRepo, jwtService, jwtRepo)
	labourerSvc := labourerService.NewLabourerService(labourerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, labourerRepo, faceMatchService)
	loanSvc := loanService.NewLoanService(db, loanRepo, labourerRepo)
	payrollSvc := payrollService.NewPayrollService(attendanceRepo, labourerRepo)
	settlementSvc := settlementService.NewSettlementService(settlementRepo, payrollSvc)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService),
		Labourer:   appHTTP.NewLabourerHandler(labourerSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Loan:       appHTTP.NewLoanHandler(loanSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Settlement: appHTTP.NewSettlementHandler(settlementSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentClient),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
