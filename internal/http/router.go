package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"award-voting/internal/domain/ballot"
	"award-voting/internal/domain/category"
	"award-voting/internal/domain/settings"
	"award-voting/internal/domain/tally"
	"award-voting/internal/domain/user"
	jwtpkg "award-voting/internal/platform/jwt"
	"award-voting/internal/worker"
)

type Handler struct {
	categorySvc *category.Service
	ballotSvc   *ballot.Service
	tallySvc    *tally.Service
	settingsSvc *settings.Service
	userSvc     *user.Service
	jwtMgr      *jwtpkg.Manager
	eventSlug   string
	submitCh    chan<- worker.SubmissionEvent
	db          *sql.DB
}

func NewRouter(
	categorySvc *category.Service,
	ballotSvc *ballot.Service,
	tallySvc *tally.Service,
	settingsSvc *settings.Service,
	userSvc *user.Service,
	jwtMgr *jwtpkg.Manager,
	eventSlug string,
	submitCh chan<- worker.SubmissionEvent,
	db *sql.DB,
) http.Handler {
	h := &Handler{
		categorySvc: categorySvc,
		ballotSvc:   ballotSvc,
		tallySvc:    tallySvc,
		settingsSvc: settingsSvc,
		userSvc:     userSvc,
		jwtMgr:      jwtMgr,
		eventSlug:   eventSlug,
		submitCh:    submitCh,
		db:          db,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger)
	r.Use(CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", h.handleVotingStatus)
		r.Get("/categories", h.handleListCategories)
		r.With(RateLimitBallots(rate.Every(time.Minute/10), 3)).Post("/ballots", h.handleSubmitBallot)

		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(jwtMgr))
			r.Use(RequireRole(user.RoleAdmin))

			r.Post("/categories", h.handleCreateCategory)
			r.Delete("/categories/{id}", h.handleDeleteCategory)
			r.Put("/settings/voting", h.handleSetVotingActive)
			r.Get("/results", h.handleResults)
			r.Get("/export", h.handleExport)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
