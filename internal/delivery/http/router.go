package http

import (
	"net/http"

	"healthnet-api/internal/delivery/http/handler"
	"healthnet-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	hospitalHandler    *handler.HospitalHandler
	doctorHandler      *handler.DoctorHandler
	timeSlotHandler    *handler.TimeSlotHandler
	appointmentHandler *handler.AppointmentHandler
	patientHandler     *handler.PatientHandler
	triageHandler      *handler.TriageHandler
	messageHandler     *handler.MessageHandler
	auditLogHandler    *handler.AuditLogHandler
	wsHandler          *handler.WSHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	hospitalHandler *handler.HospitalHandler,
	doctorHandler *handler.DoctorHandler,
	timeSlotHandler *handler.TimeSlotHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	triageHandler *handler.TriageHandler,
	messageHandler *handler.MessageHandler,
	auditLogHandler *handler.AuditLogHandler,
	wsHandler *handler.WSHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		hospitalHandler:    hospitalHandler,
		doctorHandler:      doctorHandler,
		timeSlotHandler:    timeSlotHandler,
		appointmentHandler: appointmentHandler,
		patientHandler:     patientHandler,
		triageHandler:      triageHandler,
		messageHandler:     messageHandler,
		auditLogHandler:    auditLogHandler,
		wsHandler:          wsHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Hospital discovery (public)
	api.HandleFunc("/hospital", r.hospitalHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/hospital/{id}", r.hospitalHandler.GetByID).Methods(http.MethodGet)

	// Doctor discovery (public)
	api.HandleFunc("/doctor", r.doctorHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctor/get-by-hospital/{hospitalId}", r.doctorHandler.GetByHospital).Methods(http.MethodGet)
	api.HandleFunc("/doctor/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/doctor/{id}/time-slots", r.timeSlotHandler.ListByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctor/{id}/available-slots", r.appointmentHandler.GetAvailableSlots).Methods(http.MethodGet)

	// AI triage (public, the SPA calls it before login)
	api.HandleFunc("/ai/assessment", r.triageHandler.Assess).Methods(http.MethodPost)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointment").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Create)).ServeHTTP).Methods(http.MethodPost)
	appointments.HandleFunc("/get-patient-appointment/{patientUserId}", r.appointmentHandler.GetPatientAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/get-doctor-appointment/{doctorId}", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/get-hospital-appointment/{hospitalId}", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.appointmentHandler.GetHospitalAppointments)).ServeHTTP).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/complete", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.appointmentHandler.Complete)).ServeHTTP).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/review", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Review)).ServeHTTP).Methods(http.MethodPost)

	// Time slot management (doctor manages own roster)
	timeSlots := api.PathPrefix("/time-slot").Subrouter()
	timeSlots.Use(r.authMiddleware.Authenticate)
	timeSlots.Use(middleware.RequireAdminOrDoctor)
	timeSlots.HandleFunc("", r.timeSlotHandler.Create).Methods(http.MethodPost)
	timeSlots.HandleFunc("/{id}", r.timeSlotHandler.Delete).Methods(http.MethodDelete)

	// Patient self-service (protected)
	patients := api.PathPrefix("/patient").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatient)
	patients.HandleFunc("/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patients.HandleFunc("/me", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Chat (protected)
	messages := api.PathPrefix("/message").Subrouter()
	messages.Use(r.authMiddleware.Authenticate)
	messages.HandleFunc("", r.messageHandler.Send).Methods(http.MethodPost)
	messages.HandleFunc("/conversation/{userId}", r.messageHandler.GetConversation).Methods(http.MethodGet)
	messages.HandleFunc("/{id}", r.messageHandler.Delete).Methods(http.MethodDelete)

	// Websocket push channel (protected)
	wsRoute := api.PathPrefix("/ws").Subrouter()
	wsRoute.Use(r.authMiddleware.Authenticate)
	wsRoute.HandleFunc("", r.wsHandler.Connect).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Hospital management (admin)
	admin.HandleFunc("/hospitals", r.hospitalHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.Delete).Methods(http.MethodDelete)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id}/time-slots", r.timeSlotHandler.ListByDoctor).Methods(http.MethodGet)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
