package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/hireloop/interviewd/internal/api/http"
	auth "github.com/hireloop/interviewd/internal/auth/middleware"
	"github.com/hireloop/interviewd/internal/config"
	"github.com/hireloop/interviewd/internal/db"
	"github.com/hireloop/interviewd/internal/interview"
	"github.com/hireloop/interviewd/internal/rbac"
	syncx "github.com/hireloop/interviewd/internal/sync"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := interview.NewSQLStore(dbh)

	// --- Question bank ---
	bank := interview.DefaultBank()
	if cfg.BankFile != "" {
		bank, err = interview.LoadBank(cfg.BankFile)
		if err != nil {
			log.Fatalf("question bank: %v", err)
		}
	}

	// --- Interview service ---
	svc, err := interview.NewService(ctx, store,
		interview.WithGenerator(interview.NewGenerator(bank)),
		interview.WithAuditor(syncx.NewEventRepo(dbh)),
	)
	if err != nil {
		log.Fatalf("restore state: %v", err)
	}
	if svc.Session().Session.WelcomeBack {
		log.Printf("restored an in-progress interview")
	}

	runner := interview.NewRunner(svc, cfg.TickInterval)
	runner.Start(context.Background())
	defer runner.Stop()

	// --- Auth (local JWT for offline/dev) ---
	secret := getenvOr("AUTH_HMAC_SECRET", "supersecret-dev-key")
	authSvc := auth.NewAuthService(secret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, auth.LoginOptions{
			AdminUser:     cfg.AdminUser,
			AdminPassHash: cfg.AdminPassHash,
		}))
	}

	// Protected API: JWT attaches the role, RBAC checks it per route.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Candidate flow
		pr.With(rbac.Require("resume:upload")).
			Post("/resume", api.UploadResumeHandler(svc))
		pr.With(rbac.Require("profile:update")).
			Patch("/candidates/{candidateID}/profile", api.UpdateProfileHandler(svc))
		pr.With(rbac.Require("interview:begin")).
			Post("/candidates/{candidateID}/begin", api.BeginInterviewHandler(svc))
		pr.With(rbac.Require("interview:answer")).
			Post("/candidates/{candidateID}/draft", api.SaveDraftHandler(svc))
		pr.With(rbac.Require("interview:answer")).
			Post("/candidates/{candidateID}/answer", api.SubmitAnswerHandler(svc))
		pr.With(rbac.Require("interview:tick")).
			Post("/candidates/{candidateID}/tick", api.TickHandler(svc))

		// Session state
		pr.With(rbac.Require("session:view")).
			Get("/session", api.GetSessionHandler(svc))
		pr.With(rbac.Require("session:update")).
			Post("/session/current", api.SetCurrentCandidateHandler(svc))
		pr.With(rbac.Require("session:update")).
			Post("/session/ack-welcome", api.AckWelcomeBackHandler(svc))

		// Interviewer dashboard
		pr.With(rbac.Require("candidate:view-all")).
			Get("/candidates", api.ListCandidatesHandler(svc))
		pr.With(rbac.Require("candidate:view-all")).
			Get("/candidates/{candidateID}", api.GetCandidateHandler(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func getenvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
