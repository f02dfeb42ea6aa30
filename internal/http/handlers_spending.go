package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rickeychiu/budgeteer/internal/engine"
)

const aggregationTimeout = 20 * time.Second

// handleSpending returns the full spending aggregate for the identity in
// the query string.
func (s *Server) handleSpending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := identityFromQuery(r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
	defer cancel()

	agg, err := s.engine.Aggregate(ctx, id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, agg)
}

// handleSpendingContext returns the compact projection the summarization
// collaborator consumes.
func (s *Server) handleSpendingContext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id, err := identityFromQuery(r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aggregationTimeout)
	defer cancel()

	agg, err := s.engine.Aggregate(ctx, id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, engine.Project(agg, periodLabel(r), parseGoal(r)))
}
