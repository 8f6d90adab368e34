package http

import (
	"net/http"
	"strings"

	"mediguard-api/internal/delivery/http/handler"
	"mediguard-api/internal/delivery/http/middleware"
	"mediguard-api/internal/infrastructure/metrics"
	"mediguard-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	medicationHandler  *handler.MedicationHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	spa                http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicationHandler *handler.MedicationHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	spa http.Handler,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		medicationHandler:  medicationHandler,
		adminHandler:       adminHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		spa:                spa,
	}
}

// Setup registers every route and returns the fully wrapped handler.
//
// Routes hang off the root router with full paths. A subrouter's routes all
// share its prefix matcher, and a later sibling matching that prefix makes mux
// forget an earlier method mismatch, turning 405s into 404s.
func (r *Router) Setup() http.Handler {
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Health check
	r.router.HandleFunc("/api/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	r.router.HandleFunc("/api/auth/register", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/api/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// Resource routes (protected)
	r.router.Handle("/api/appointments", r.protected(r.appointmentHandler.GetMyAppointments)).Methods(http.MethodGet)
	r.router.Handle("/api/appointments", r.protected(r.appointmentHandler.CreateAppointment)).Methods(http.MethodPost)
	r.router.Handle("/api/medications", r.protected(r.medicationHandler.GetMyMedications)).Methods(http.MethodGet)
	r.router.Handle("/api/medications", r.protected(r.medicationHandler.CreateMedication)).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	r.router.Handle("/api/admin/stats", r.adminOnly(r.adminHandler.GetStats)).Methods(http.MethodGet)

	// Anything unmatched outside /api belongs to the single-page app
	r.router.NotFoundHandler = http.HandlerFunc(r.notFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Metrics, CORS and logging sit outside the mux so preflights and
	// unmatched routes pass through them too.
	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(metrics.Instrument(r.router)))
}

func (r *Router) protected(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

func (r *Router) adminOnly(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(middleware.RequireAdmin(h))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	if isAPIPath(req.URL.Path) {
		response.NotFound(w, "")
		return
	}
	r.spa.ServeHTTP(w, req)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
