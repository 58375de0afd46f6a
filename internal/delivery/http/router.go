package http

import (
	"net/http"

	"medical-office-api/internal/delivery/http/handler"
	"medical-office-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	accountHandler      *handler.AccountHandler
	patientHandler      *handler.PatientHandler
	practitionerHandler *handler.PractitionerHandler
	appointmentHandler  *handler.AppointmentHandler
	consultationHandler *handler.ConsultationHandler
	prescriptionHandler *handler.PrescriptionHandler
	examHandler         *handler.ExamHandler
	statsHandler        *handler.StatsHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	metricsHandler      http.Handler
}

type Handlers struct {
	Auth         *handler.AuthHandler
	Account      *handler.AccountHandler
	Patient      *handler.PatientHandler
	Practitioner *handler.PractitionerHandler
	Appointment  *handler.AppointmentHandler
	Consultation *handler.ConsultationHandler
	Prescription *handler.PrescriptionHandler
	Exam         *handler.ExamHandler
	Stats        *handler.StatsHandler
	AuditLog     *handler.AuditLogHandler
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         handlers.Auth,
		accountHandler:      handlers.Account,
		patientHandler:      handlers.Patient,
		practitionerHandler: handlers.Practitioner,
		appointmentHandler:  handlers.Appointment,
		consultationHandler: handlers.Consultation,
		prescriptionHandler: handlers.Prescription,
		examHandler:         handlers.Exam,
		statsHandler:        handlers.Stats,
		auditLogHandler:     handlers.AuditLog,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		metricsHandler:      promhttp.Handler(),
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public auth routes
	api.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/admins/login", r.authHandler.AdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated routes (staff and admins)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentAccount).Methods(http.MethodGet)

	protected.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	protected.HandleFunc("/practitioners", r.practitionerHandler.GetAllPractitioners).Methods(http.MethodGet)
	protected.HandleFunc("/practitioners", r.practitionerHandler.CreatePractitioner).Methods(http.MethodPost)
	protected.HandleFunc("/practitioners/{id}", r.practitionerHandler.GetPractitioner).Methods(http.MethodGet)
	protected.HandleFunc("/practitioners/{id}", r.practitionerHandler.UpdatePractitioner).Methods(http.MethodPut)
	protected.HandleFunc("/practitioners/{id}", r.practitionerHandler.DeletePractitioner).Methods(http.MethodDelete)

	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// /search is registered before /{id} so it is not taken for an id.
	protected.HandleFunc("/consultations", r.consultationHandler.GetAllConsultations).Methods(http.MethodGet)
	protected.HandleFunc("/consultations", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	protected.HandleFunc("/consultations/search", r.consultationHandler.SearchConsultations).Methods(http.MethodGet)
	protected.HandleFunc("/consultations/{id}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	protected.HandleFunc("/consultations/{id}", r.consultationHandler.UpdateConsultation).Methods(http.MethodPut)
	protected.HandleFunc("/consultations/{id}", r.consultationHandler.DeleteConsultation).Methods(http.MethodDelete)

	protected.HandleFunc("/prescriptions", r.prescriptionHandler.GetPrescriptions).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPut)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	protected.HandleFunc("/exams", r.examHandler.GetExams).Methods(http.MethodGet)
	protected.HandleFunc("/exams", r.examHandler.CreateExam).Methods(http.MethodPost)
	protected.HandleFunc("/exams/{id}", r.examHandler.UpdateExam).Methods(http.MethodPut)
	protected.HandleFunc("/exams/{id}", r.examHandler.DeleteExam).Methods(http.MethodDelete)

	protected.HandleFunc("/stats", r.statsHandler.GetStats).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users", r.accountHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/pending", r.accountHandler.GetPendingUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/approve", r.accountHandler.ApproveUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.accountHandler.DeleteUser).Methods(http.MethodDelete)

	admin.HandleFunc("/admins", r.accountHandler.GetAllAdmins).Methods(http.MethodGet)
	admin.HandleFunc("/admins", r.accountHandler.CreateAdmin).Methods(http.MethodPost)
	admin.HandleFunc("/admins/promote", r.accountHandler.PromoteUser).Methods(http.MethodPost)
	admin.HandleFunc("/admins/{id}", r.accountHandler.UpdateAdmin).Methods(http.MethodPut)
	admin.HandleFunc("/admins/{id}", r.accountHandler.DeleteAdmin).Methods(http.MethodDelete)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Preflight requests match no API route; answer them here so CORS runs.
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
