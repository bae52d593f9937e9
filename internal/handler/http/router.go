package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shairahamancsc/labourpro-backend-go/internal/config"
	"github.com/shairahamancsc/labourpro-backend-go/internal/handler/http/middleware"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Labourer   LabourerHandler
	Attendance AttendanceHandler
	Loan       LoanHandler
	Payroll    PayrollHandler
	Settlement SettlementHandler
	Payment    PaymentHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "labourpro"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthRedirectGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/labourers", func(r chi.Router) {
				r.Get("/", h.Labourer.ListLabourers)
				r.Post("/", h.Labourer.CreateLabourer)
				r.Get("/{id}", h.Labourer.GetLabourer)
				r.Put("/{id}", h.Labourer.UpdateLabourer)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Labourer.DeleteLabourer)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListRange)
				r.Get("/summary", h.Attendance.Summary)
				r.Post("/face-checkin", h.Attendance.FaceCheckin)
				r.Get("/{date}", h.Attendance.GetDay)
				r.Put("/{date}", h.Attendance.UpsertDay)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Get("/", h.Loan.ListTransactions)
				r.Post("/", h.Loan.ApplyTransaction)
			})

			r.Get("/payroll/report", h.Payroll.Report)

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/", h.Settlement.ListSettlements)
				r.Get("/{id}", h.Settlement.GetSettlement)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Settlement.CreateSettlement)
				})
			})

			r.Route("/payments/orders", func(r chi.Router) {
				r.Post("/", h.Payment.CreateOrder)
				r.Get("/{id}", h.Payment.GetOrder)
			})
		})
	})

	return r
}
