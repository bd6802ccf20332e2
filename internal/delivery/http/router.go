package http

import (
	"net/http"

	"healthcare-first-portal/internal/delivery/http/handler"
	"healthcare-first-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	availabilityHandler *handler.AvailabilityHandler
	blockedDayHandler   *handler.BlockedDayHandler
	slotHandler         *handler.SlotHandler
	bookingHandler      *handler.BookingHandler
	appointmentHandler  *handler.AppointmentHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	availabilityHandler *handler.AvailabilityHandler,
	blockedDayHandler *handler.BlockedDayHandler,
	slotHandler *handler.SlotHandler,
	bookingHandler *handler.BookingHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		availabilityHandler: availabilityHandler,
		blockedDayHandler:   blockedDayHandler,
		slotHandler:         slotHandler,
		bookingHandler:      bookingHandler,
		appointmentHandler:  appointmentHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/provider/register", r.authHandler.RegisterProvider).Methods(http.MethodPost)
	auth.HandleFunc("/provider/login", r.authHandler.LoginProvider).Methods(http.MethodPost)
	auth.HandleFunc("/patient/login", r.authHandler.LoginPatient).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.Refresh).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Provider routes
	provider := api.PathPrefix("/provider").Subrouter()
	provider.Use(r.authMiddleware.Authenticate)
	provider.Use(middleware.RequireProvider)

	provider.HandleFunc("/profile", r.authHandler.ProviderProfile).Methods(http.MethodGet)

	provider.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	provider.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	provider.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	provider.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)

	provider.HandleFunc("/availability", r.availabilityHandler.GetWeekly).Methods(http.MethodGet)
	provider.HandleFunc("/availability", r.availabilityHandler.Update).Methods(http.MethodPut)

	provider.HandleFunc("/blocked-days", r.blockedDayHandler.List).Methods(http.MethodGet)
	provider.HandleFunc("/blocked-days", r.blockedDayHandler.Create).Methods(http.MethodPost)
	provider.HandleFunc("/blocked-days/{id}", r.blockedDayHandler.Update).Methods(http.MethodPut)
	provider.HandleFunc("/blocked-days/{id}", r.blockedDayHandler.Delete).Methods(http.MethodDelete)

	provider.HandleFunc("/slots", r.slotHandler.List).Methods(http.MethodGet)
	provider.HandleFunc("/slots", r.slotHandler.Create).Methods(http.MethodPost)
	provider.HandleFunc("/slots/{id}", r.slotHandler.Get).Methods(http.MethodGet)
	provider.HandleFunc("/slots/{id}", r.slotHandler.Update).Methods(http.MethodPut)
	provider.HandleFunc("/slots/{id}", r.slotHandler.Delete).Methods(http.MethodDelete)

	provider.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	provider.HandleFunc("/appointments/stats", r.appointmentHandler.Stats).Methods(http.MethodGet)
	provider.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Patient routes
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	patient.HandleFunc("/profile", r.patientHandler.Profile).Methods(http.MethodGet)

	patient.HandleFunc("/providers", r.bookingHandler.ListProviders).Methods(http.MethodGet)
	patient.HandleFunc("/providers/{id}/slots", r.bookingHandler.ListAvailableSlots).Methods(http.MethodGet)
	patient.HandleFunc("/providers/{id}/generate-slots", r.bookingHandler.GenerateSlots).Methods(http.MethodGet)
	patient.HandleFunc("/providers/{id}/availability", r.bookingHandler.AvailabilityForDate).Methods(http.MethodGet)

	patient.HandleFunc("/appointments", r.bookingHandler.MyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/book", r.bookingHandler.BookBySlot).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/book-by-time", r.bookingHandler.BookByTime).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
