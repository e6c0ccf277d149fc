package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/config"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	timesheetHandler TimesheetHandler,
	reportHandler ReportHandler,
	calendarHandler CalendarHandler,
	shiftHandler ShiftHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workpulse-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timesheets", func(r chi.Router) {
				r.Route("/my", func(r chi.Router) {
					r.Get("/daily", timesheetHandler.GetMyDailyStatuses)
					r.Get("/summary", timesheetHandler.GetMyPeriodSummary)
				})

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/{employeeID}/summary", timesheetHandler.GetEmployeePeriodSummary)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", calendarHandler.ListHolidays)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", calendarHandler.CreateHoliday)
				})
			})

			r.Route("/shift-rules", func(r chi.Router) {
				r.Get("/default", shiftHandler.GetDefaultRule)
				r.Get("/{ruleID}", shiftHandler.GetRule)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", shiftHandler.CreateRule)
				})
			})

			// Manager only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/attendance/monthly", reportHandler.MonthlyAttendance)
				r.Get("/attendance/monthly/export", reportHandler.ExportMonthlyAttendance)
			})
		})
	})

	return r
}
