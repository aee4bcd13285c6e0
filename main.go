package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"VinavalPortal/gateway"
	"VinavalPortal/handlers"
	"VinavalPortal/middleware"
	"VinavalPortal/mutate"
	"VinavalPortal/session"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	upstream := os.Getenv("UPSTREAM_API_URL")
	if upstream == "" {
		log.Fatal("UPSTREAM_API_URL is required")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-in-production"
	}

	// Initialize collaborators
	gw := gateway.New(upstream)
	sessions := session.New(secret, 7*24*time.Hour)
	mutations := mutate.New(gw)
	mutations.StartCleanup()

	handlers.Init(gw, sessions, mutations)
	middleware.InitSessions(sessions)

	middleware.InitRateLimiter(rateLimit())

	// Create router
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/portal/health", healthCheck).Methods("GET")
	router.HandleFunc("/portal/login", handlers.Login).Methods("POST")
	router.HandleFunc("/portal/reset-password", handlers.ResetPassword).Methods("POST")
	router.HandleFunc("/portal/logout", handlers.Logout).Methods("POST")

	// Admin-only routes
	admin := router.PathPrefix("/portal").Subrouter()
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/admin/dashboard", handlers.AdminDashboard).Methods("GET")
	admin.HandleFunc("/assessments", handlers.CreateAssessment).Methods("POST")
	admin.HandleFunc("/assessments/{id}/delete/request", handlers.RequestAssessmentDelete).Methods("POST")
	admin.HandleFunc("/assessments/{id}/delete/confirm", handlers.ConfirmAssessmentDelete).Methods("POST")

	// User management routes (admin or examiner)
	staff := router.PathPrefix("/portal").Subrouter()
	staff.Use(middleware.StaffOnly)
	staff.HandleFunc("/admin/users", handlers.ManageUsers).Methods("GET")
	staff.HandleFunc("/admin/users/{id}/results", handlers.UserResults).Methods("GET")
	staff.HandleFunc("/admin/users/{id}/report", handlers.DownloadUserReport).Methods("GET")
	staff.HandleFunc("/users", handlers.CreateUser).Methods("POST")
	staff.HandleFunc("/users/{id}/delete/request", handlers.RequestUserDelete).Methods("POST")
	staff.HandleFunc("/users/{id}/delete/confirm", handlers.ConfirmUserDelete).Methods("POST")
	staff.HandleFunc("/examiner/candidates", handlers.Candidates).Methods("GET")

	// Examiner routes
	examiner := router.PathPrefix("/portal").Subrouter()
	examiner.Use(middleware.ExaminerOnly)
	examiner.HandleFunc("/examiner/dashboard", handlers.ExaminerDashboard).Methods("GET")

	// Candidate routes
	candidate := router.PathPrefix("/portal").Subrouter()
	candidate.Use(middleware.CandidateOnly)
	candidate.HandleFunc("/candidate/dashboard", handlers.CandidateDashboard).Methods("GET")

	// Apply logging middleware
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RateLimitMiddleware)

	// Configure CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: getAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	handler := corsHandler.Handler(router)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Portal starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal("Failed to start portal:", err)
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"VinavalAI Portal"}`))
}

func rateLimit() int {
	if raw := os.Getenv("RATE_LIMIT_PER_MINUTE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
		log.Printf("Warning: invalid RATE_LIMIT_PER_MINUTE %q, using default", raw)
	}
	return 100
}

func getAllowedOrigins() []string {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		// Default allowed origins for development
		return []string{
			"*",
		}
	}

	var result []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
