package http

import (
	"database/sql"
	"net/http"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/assistant"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/auth"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/bed"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/dashboard"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/diagnostic"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/inventory"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/messaging"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/patient"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/telemetry"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/visit"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// SetupRouter initializes all routes for the application
func SetupRouter(db *sql.DB, verifier *auth.Verifier, perms auth.Permissions, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *mux.Router {
	// Initialize auth components
	authHandler := auth.NewHandler(verifier, metrics)

	// Initialize patient components
	patientRepo := patient.NewRepository(db)
	patientService := patient.NewService(patientRepo, publisher, metrics)
	patientHandler := patient.NewHandler(patientService)

	// Initialize bed components
	bedRepo := bed.NewRepository(db)
	bedService := bed.NewService(bedRepo, publisher)
	bedHandler := bed.NewHandler(bedService)

	// Initialize visit components
	visitRepo := visit.NewRepository(db)
	visitService := visit.NewService(visitRepo)
	visitHandler := visit.NewHandler(visitService)

	// Initialize diagnostic test components
	testRepo := diagnostic.NewRepository(db)
	testService := diagnostic.NewService(testRepo)
	testHandler := diagnostic.NewHandler(testService)

	// Initialize inventory components
	invRepo := inventory.NewRepository(db)
	invService := inventory.NewService(invRepo, publisher)
	invHandler := inventory.NewHandler(invService)

	// Initialize dashboard components
	dashRepo := dashboard.NewRepository(db)
	dashService := dashboard.NewService(dashRepo)
	dashHandler := dashboard.NewHandler(dashService)

	// Initialize assistant components
	assistantHandler := assistant.NewHandler()

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("hospital-frontdesk"))

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"hospital-frontdesk"}`))
	}).Methods("GET")

	// Public login endpoint; everything else requires a token
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	r.Handle("/auth/logout",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			http.HandlerFunc(authHandler.Logout),
		),
	).Methods("POST")

	// Patient routes
	r.Handle("/patients",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("patient:create", perms, metrics)(
				http.HandlerFunc(patientHandler.AdmitPatient),
			),
		),
	).Methods("POST")

	r.Handle("/patients",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("patient:view", perms, metrics)(
				http.HandlerFunc(patientHandler.ListPatients),
			),
		),
	).Methods("GET")

	r.Handle("/patients/all",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("patient:view", perms, metrics)(
				http.HandlerFunc(patientHandler.ListAllPatients),
			),
		),
	).Methods("GET")

	r.Handle("/patients/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("patient:view", perms, metrics)(
				http.HandlerFunc(patientHandler.GetPatient),
			),
		),
	).Methods("GET")

	r.Handle("/patients/{id}/discharge",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("patient:discharge", perms, metrics)(
				http.HandlerFunc(patientHandler.DischargePatient),
			),
		),
	).Methods("POST")

	// Bed routes (creation and edits are admin-only via permissions)
	r.Handle("/beds",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("bed:create", perms, metrics)(
				http.HandlerFunc(bedHandler.CreateBed),
			),
		),
	).Methods("POST")

	r.Handle("/beds",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("bed:view", perms, metrics)(
				http.HandlerFunc(bedHandler.ListBeds),
			),
		),
	).Methods("GET")

	r.Handle("/beds/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("bed:update", perms, metrics)(
				http.HandlerFunc(bedHandler.UpdateBed),
			),
		),
	).Methods("PUT")

	// Walk-in visit routes
	r.Handle("/visits",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("visit:create", perms, metrics)(
				http.HandlerFunc(visitHandler.CreateVisit),
			),
		),
	).Methods("POST")

	r.Handle("/visits",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("visit:view", perms, metrics)(
				http.HandlerFunc(visitHandler.ListVisits),
			),
		),
	).Methods("GET")

	r.Handle("/visits/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("visit:view", perms, metrics)(
				http.HandlerFunc(visitHandler.GetVisit),
			),
		),
	).Methods("GET")

	r.Handle("/visits/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("visit:update", perms, metrics)(
				http.HandlerFunc(visitHandler.UpdateVisit),
			),
		),
	).Methods("PUT")

	r.Handle("/visits/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("visit:delete", perms, metrics)(
				http.HandlerFunc(visitHandler.DeleteVisit),
			),
		),
	).Methods("DELETE")

	// Diagnostic test routes
	r.Handle("/tests",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("test:create", perms, metrics)(
				http.HandlerFunc(testHandler.CreateTest),
			),
		),
	).Methods("POST")

	r.Handle("/tests",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("test:view", perms, metrics)(
				http.HandlerFunc(testHandler.ListTests),
			),
		),
	).Methods("GET")

	r.Handle("/tests/types",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("test:view", perms, metrics)(
				http.HandlerFunc(testHandler.ListTestTypes),
			),
		),
	).Methods("GET")

	r.Handle("/tests/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("test:update", perms, metrics)(
				http.HandlerFunc(testHandler.UpdateTest),
			),
		),
	).Methods("PUT")

	r.Handle("/tests/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("test:delete", perms, metrics)(
				http.HandlerFunc(testHandler.DeleteTest),
			),
		),
	).Methods("DELETE")

	// Inventory routes
	r.Handle("/inventory",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("inventory:create", perms, metrics)(
				http.HandlerFunc(invHandler.CreateItem),
			),
		),
	).Methods("POST")

	r.Handle("/inventory",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("inventory:view", perms, metrics)(
				http.HandlerFunc(invHandler.ListItems),
			),
		),
	).Methods("GET")

	r.Handle("/inventory/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("inventory:update", perms, metrics)(
				http.HandlerFunc(invHandler.UpdateItem),
			),
		),
	).Methods("PUT")

	r.Handle("/inventory/{id}",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("inventory:delete", perms, metrics)(
				http.HandlerFunc(invHandler.DeleteItem),
			),
		),
	).Methods("DELETE")

	// Dashboard route
	r.Handle("/dashboard",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("dashboard:view", perms, metrics)(
				http.HandlerFunc(dashHandler.GetDashboard),
			),
		),
	).Methods("GET")

	// Assistant routes
	r.Handle("/assistant/dosage",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("assistant:use", perms, metrics)(
				http.HandlerFunc(assistantHandler.SuggestDosage),
			),
		),
	).Methods("POST")

	r.Handle("/assistant/recommend",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("assistant:use", perms, metrics)(
				http.HandlerFunc(assistantHandler.RecommendMedicines),
			),
		),
	).Methods("POST")

	r.Handle("/assistant/summarize",
		auth.MiddlewareWithMetrics(verifier, metrics)(
			auth.RequirePermissionWithMetrics("assistant:use", perms, metrics)(
				http.HandlerFunc(assistantHandler.SummarizeNotes),
			),
		),
	).Methods("POST")

	return r
}
