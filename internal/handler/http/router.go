package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/handler/http/middleware"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/jwt"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/metrics"
)

type RouterConfig struct {
	Env        string
	PhotoDir   string
	Handlers   Handlers
	JWTService jwt.Service
}

// Handlers groups every HTTP handler wired into the router.
type Handlers struct {
	Auth       AuthHandler
	Detect     DetectHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Holiday    HolidayHandler
	Leave      LeaveHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "liggey-sinaa"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Handle("/metrics", metrics.Handler())

	// Reference photos for the console roster view.
	fileServer := http.StripPrefix("/data/images/", http.FileServer(http.Dir(cfg.PhotoDir)))
	r.Get("/data/images/*", fileServer.ServeHTTP)

	h := cfg.Handlers
	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// The kiosk endpoint carries no token; the face itself is the
		// credential.
		r.Post("/detect", h.Detect.Detect)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Add)
				r.Delete("/{matricule}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListDaily)
				r.Get("/tracking", h.Attendance.Tracking)
				r.Get("/present", h.Attendance.Present)
				r.Get("/absent", h.Attendance.Absent)
				r.Get("/stats/{matricule}", h.Attendance.Stats)
			})

			r.Get("/reports/advanced", h.Report.Advanced)

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Add)
				r.Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Delete("/{id}", h.Leave.Delete)
			})
		})
	})
	return r
}
