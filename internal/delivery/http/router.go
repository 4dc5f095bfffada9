package http

import (
	"net/http"

	"clinica-dental-api/internal/delivery/http/handler"
	"clinica-dental-api/internal/delivery/http/middleware"
	"clinica-dental-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	log                *logrus.Logger
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	dentistHandler     *handler.DentistHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loginLimiter       *middleware.RateLimiter
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	dentistHandler *handler.DentistHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loginLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		log:                log,
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		dentistHandler:     dentistHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loginLimiter:       loginLimiter,
	}
}

func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.Handle("/auth/login", r.loginLimiter.Limit(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)

	// Everything below requires a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPatch, http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	protected.HandleFunc("/dentists/{id}/services", r.dentistHandler.GetDentistServices).Methods(http.MethodGet)

	protected.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	r.router.Use(middleware.RequestLogger(r.log))

	// CORS wraps the router so preflight requests never reach route matching
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
