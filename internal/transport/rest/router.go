package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/andika/attendance-management/internal/attendance"
	"github.com/andika/attendance-management/internal/department"
	"github.com/andika/attendance-management/internal/staff"
	"github.com/andika/attendance-management/internal/transport/middleware"
	"github.com/andika/attendance-management/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, staffHandler *staff.Handler, attendanceHandler *attendance.Handler, departmentHandler *department.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if departmentHandler != nil {
			r.Get("/departments", departmentHandler.GetDepartments)
		}

		if staffHandler != nil {
			r.Route("/staff", func(sr chi.Router) {
				sr.Get("/", staffHandler.ListStaff)
				sr.Post("/", staffHandler.CreateStaff)
				sr.Get("/{id}", staffHandler.GetStaff)
				sr.Put("/{id}", staffHandler.UpdateStaff)
				sr.Delete("/{id}", staffHandler.DeleteStaff)
			})
		}

		if attendanceHandler != nil {
			r.Route("/attendance", func(ar chi.Router) {
				ar.Get("/", attendanceHandler.ListRecords)
				ar.Get("/today", attendanceHandler.TodayRecords)
				ar.Get("/summary", attendanceHandler.Summary)
				ar.Post("/check-in", attendanceHandler.CheckIn)
				ar.Post("/check-out", attendanceHandler.CheckOut)
			})
		}
	})
}
