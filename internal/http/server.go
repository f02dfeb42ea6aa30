// Package http exposes the spending engine and profile store as a JSON API.
package http

import (
	"context"
	"net/http"

	"github.com/rickeychiu/budgeteer/internal/core"
	"github.com/rickeychiu/budgeteer/internal/middleware/security"
	"github.com/rickeychiu/budgeteer/internal/middleware/trace"
)

// Aggregator is the inbound port to the aggregation engine.
type Aggregator interface {
	Aggregate(ctx context.Context, id core.UserIdentity) (*core.SpendingAggregate, error)
}

// ProfileStore is the port to survey-profile persistence.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (core.Profile, error)
	Upsert(ctx context.Context, p core.Profile) error
}

type Server struct {
	http.Server
	engine   Aggregator
	profiles ProfileStore
}

// NewServer wires the API routes and returns a server ready to listen on
// addr. Timeouts on the embedded http.Server are the caller's to set.
func NewServer(addr string, engine Aggregator, profiles ProfileStore) *Server {
	s := &Server{
		Server:   http.Server{Addr: addr},
		engine:   engine,
		profiles: profiles,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/spending", s.handleSpending)
	mux.HandleFunc("/api/spending/context", s.handleSpendingContext)
	mux.HandleFunc("/api/profile/", s.handleProfileGet)
	mux.HandleFunc("/api/profile/upsert", s.handleProfileUpsert)

	headers := security.Headers(security.DefaultHeadersConfig())
	s.Handler = trace.Middleware(headers(mux))
	return s
}

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
