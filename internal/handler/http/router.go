package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/compliance-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	shiftHandler ShiftHandler,
	leaveHandler LeaveHandler,
	officialWorkHandler LeaveHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/today", attendanceHandler.Today)
				r.Get("/overview/{erpID}", attendanceHandler.Overview)
				r.Post("/individual", attendanceHandler.Individual)
				r.Post("/history", attendanceHandler.History)
				r.Post("/detailed", attendanceHandler.Detailed)
				r.Post("/team", attendanceHandler.Team)
				r.Post("/current", attendanceHandler.Current)

				r.Route("/section", func(r chi.Router) {
					r.Post("/", attendanceHandler.Section)
					r.Post("/status", attendanceHandler.SectionStatus)
				})

				r.Route("/manual", func(r chi.Router) {
					r.Post("/", attendanceHandler.ManualAdd)
					r.Put("/", attendanceHandler.ManualUpdate)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Post("/details", shiftHandler.Details)
				r.Post("/history", shiftHandler.History)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/{erpID}", leaveHandler.ListBySection)
				r.Post("/action", leaveHandler.Act)
			})

			r.Route("/official-work", func(r chi.Router) {
				r.Post("/", officialWorkHandler.Create)
				r.Get("/{erpID}", officialWorkHandler.ListBySection)
				r.Post("/action", officialWorkHandler.Act)
			})

			r.Get("/holidays", holidayHandler.List)
		})
	})
	return r
}
