package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rickeychiu/budgeteer/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps the engine's error taxonomy onto HTTP statuses: bad
// identity input is the caller's fault, missing directory matches are 404,
// and upstream fetch failures are a bad gateway.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *core.UpstreamError
	switch {
	case errors.Is(err, core.ErrIdentityUnresolvable):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrCustomerNotFound),
		errors.Is(err, core.ErrNoAccountsForCustomer),
		errors.Is(err, core.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &upstream):
		slog.ErrorContext(r.Context(), "Upstream fetch failed",
			"operation", upstream.Op, "upstream_status", upstream.Status, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// identityFromQuery builds a UserIdentity from query parameters. A `name`
// parameter selects the full-name form; otherwise `given`+`family` select
// the split form. Neither present is a bad request.
func identityFromQuery(r *http.Request) (core.UserIdentity, error) {
	q := r.URL.Query()
	if name := strings.TrimSpace(q.Get("name")); name != "" {
		return core.IdentityFromFullName(name), nil
	}
	given := strings.TrimSpace(q.Get("given"))
	family := strings.TrimSpace(q.Get("family"))
	if given != "" || family != "" {
		return core.IdentityFromParts(given, family), nil
	}
	return core.UserIdentity{}, core.ErrIdentityUnresolvable
}

// parseGoal reads an optional numeric goal query parameter.
func parseGoal(r *http.Request) *float64 {
	v := strings.TrimSpace(r.URL.Query().Get("goal"))
	if v == "" {
		return nil
	}
	g, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &g
}

// periodLabel returns the reporting period for the context projection,
// defaulting to the current month.
func periodLabel(r *http.Request) string {
	if m := strings.TrimSpace(r.URL.Query().Get("month")); m != "" {
		return m
	}
	return time.Now().Format("January 2006")
}
