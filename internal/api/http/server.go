package http

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"lifeline/internal/metrics"
	"lifeline/internal/security"
	"lifeline/internal/service"
	"lifeline/internal/session"

	"github.com/gorilla/mux"
)

// Pinger is anything the readiness probe can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Dependencies is everything the HTTP surface needs from the rest of the service.
type Dependencies struct {
	Identity service.IdentityService
	Donors   service.DonorService
	Workflow service.RequestWorkflow
	Matching service.MatchingService
	Sessions session.Store
	Tokens   security.TokenManager
	Cookie   CookieConfig
	Metrics  *metrics.Metrics
	// MetricsPath is left empty to skip the /metrics route.
	MetricsPath string
	Database    Pinger
}

type Server struct {
	identity  service.IdentityService
	donors    service.DonorService
	workflow  service.RequestWorkflow
	matching  service.MatchingService
	sessions  session.Store
	tokens    security.TokenManager
	cookie    CookieConfig
	metrics   *metrics.Metrics
	templates *template.Template
	health    *HealthHandler
}

func NewServer(deps Dependencies) *Server {
	if deps.Cookie.Name == "" {
		deps.Cookie.Name = "lifeline_session"
	}
	return &Server{
		identity:  deps.Identity,
		donors:    deps.Donors,
		workflow:  deps.Workflow,
		matching:  deps.Matching,
		sessions:  deps.Sessions,
		tokens:    deps.Tokens,
		cookie:    deps.Cookie,
		metrics:   deps.Metrics,
		templates: parseTemplates(),
		health:    NewHealthHandler(map[string]Pinger{"postgres": deps.Database, "redis": deps.Sessions}),
	}
}

// NewRouter builds the full route table with the middleware chain applied.
func NewRouter(deps Dependencies) *mux.Router {
	s := NewServer(deps)
	router := mux.NewRouter()
	router.Use(s.recoverer, s.accessLog, s.authorize)

	// Pages
	router.HandleFunc("/", s.handleSigninPage).Methods("GET")
	router.HandleFunc("/signin", s.handleSigninPage).Methods("GET")
	router.HandleFunc("/signup", s.handleSignupPage).Methods("GET")
	router.HandleFunc("/hospital", s.handleHospitalSigninPage).Methods("GET")
	router.HandleFunc("/hospitals/signin", s.handleHospitalSigninPage).Methods("GET")
	router.HandleFunc("/hospitals/signup", s.handleHospitalSignupPage).Methods("GET")

	// Identity
	router.HandleFunc("/login", s.handleLogin).Methods("POST")
	router.HandleFunc("/signup", s.handleSignup).Methods("POST")
	router.HandleFunc("/hospitals/signin", s.handleHospitalSignin).Methods("POST")
	router.HandleFunc("/hospitals/signup", s.handleHospitalSignup).Methods("POST")
	router.HandleFunc("/signout", s.handleSignout).Methods("GET")

	// Requests and donors
	router.HandleFunc("/request", s.handleCreateRequest).Methods("POST")
	router.HandleFunc("/donate", s.handleDonate).Methods("POST")
	router.HandleFunc("/success", s.handleRequesterDashboard).Methods("GET")
	router.HandleFunc("/hospitals/dashboard", s.handleHospitalDashboard).Methods("GET")
	router.HandleFunc("/hospitals/dashboard/export", s.handleExport).Methods("GET")
	router.HandleFunc("/approve", s.handleDecide).Methods("POST")
	router.HandleFunc("/reject", s.handleDecide).Methods("POST")

	// Operations
	router.HandleFunc("/health", s.health.Health).Methods("GET")
	router.HandleFunc("/health/ready", s.health.Ready).Methods("GET")
	if deps.MetricsPath != "" && deps.Metrics != nil {
		router.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods("GET")
	}

	// mux only runs router.Use middleware on matched routes.
	router.NotFoundHandler = s.recoverer(s.accessLog(http.HandlerFunc(s.handleNotFound)))
	router.MethodNotAllowedHandler = s.recoverer(s.accessLog(http.HandlerFunc(s.handleMethodNotAllowed)))
	return router
}
