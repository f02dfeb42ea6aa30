package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rickeychiu/budgeteer/internal/core"
)

type fakeAggregator struct {
	agg *core.SpendingAggregate
	err error
}

func (f *fakeAggregator) Aggregate(_ context.Context, _ core.UserIdentity) (*core.SpendingAggregate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.agg, nil
}

type fakeProfiles struct {
	stored map[string]core.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{stored: map[string]core.Profile{}}
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (core.Profile, error) {
	p, ok := f.stored[userID]
	if !ok {
		return core.Profile{}, core.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p core.Profile) error {
	f.stored[p.UserID] = p
	return nil
}

func sampleAggregate() *core.SpendingAggregate {
	totals := core.NewCategoryTotals()
	totals[core.CategoryTransportation] = 50
	totals[core.CategoryMiscellaneous] = 30
	return &core.SpendingAggregate{
		CustomerID:     "1",
		CustomerName:   "Jane Doe",
		AccountID:      "10",
		CategoryTotals: totals,
		TotalSpending:  80,
		PurchaseCount:  2,
	}
}

func TestHandleHealth(t *testing.T) {
	srv := NewServer(":0", &fakeAggregator{agg: sampleAggregate()}, newFakeProfiles())

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestHandleSpending(t *testing.T) {
	srv := NewServer(":0", &fakeAggregator{agg: sampleAggregate()}, newFakeProfiles())

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/spending?name=Jane+Doe", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rr.Code, rr.Body.String())
	}

	var agg core.SpendingAggregate
	if err := json.Unmarshal(rr.Body.Bytes(), &agg); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if agg.CustomerName != "Jane Doe" || agg.TotalSpending != 80 {
		t.Errorf("aggregate = %+v", agg)
	}
}

func TestHandleSpendingErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"missing identity", "/api/spending", nil, http.StatusBadRequest},
		{"unresolvable identity", "/api/spending?given=Jane", core.ErrIdentityUnresolvable, http.StatusBadRequest},
		{"customer not found", "/api/spending?name=Ghost+User", core.ErrCustomerNotFound, http.StatusNotFound},
		{"no accounts", "/api/spending?name=Jane+Doe", core.ErrNoAccountsForCustomer, http.StatusNotFound},
		{"upstream down", "/api/spending?name=Jane+Doe",
			&core.UpstreamError{Op: "list customers", Status: 503}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(":0", &fakeAggregator{err: tt.err}, newFakeProfiles())

			rr := httptest.NewRecorder()
			srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if !strings.Contains(rr.Body.String(), "error") {
				t.Errorf("body missing error field: %s", rr.Body.String())
			}
		})
	}
}

func TestHandleSpendingContext(t *testing.T) {
	srv := NewServer(":0", &fakeAggregator{agg: sampleAggregate()}, newFakeProfiles())

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
		"/api/spending/context?name=Jane+Doe&month=August+2026&goal=500", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var ctx core.SpendingContext
	if err := json.Unmarshal(rr.Body.Bytes(), &ctx); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(ctx.Categories) != 2 {
		t.Fatalf("got %d categories, want 2 nonzero", len(ctx.Categories))
	}
	if ctx.Categories[0].Name != "Transportation" || ctx.Categories[0].Value != 50 {
		t.Errorf("top category = %+v", ctx.Categories[0])
	}
	if ctx.Month != "August 2026" {
		t.Errorf("month = %q", ctx.Month)
	}
	if ctx.Goal == nil || *ctx.Goal != 500 {
		t.Errorf("goal = %v, want 500", ctx.Goal)
	}
	if ctx.Balance == nil || *ctx.Balance != 80 {
		t.Errorf("balance = %v, want 80", ctx.Balance)
	}
}

func TestSpendingMethodNotAllowed(t *testing.T) {
	srv := NewServer(":0", &fakeAggregator{agg: sampleAggregate()}, newFakeProfiles())

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/spending", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	srv := NewServer(":0", &fakeAggregator{agg: sampleAggregate()}, newFakeProfiles())

	body := `{"userId":"auth0|1","email":"jane@example.com","survey":{"goals":["stick_budget"],"time_horizon":"quarter"}}`
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/profile/upsert", strings.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("upsert status = %d, body: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/profile/auth0|1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var p core.Profile
	if err := json.Unmarshal(rr.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.Email != "jane@example.com" || p.Survey.TimeHorizon != "quarter" {
		t.Errorf("profile = %+v", p)
	}
}

func TestProfileGetMissing(t *testing.T) {
	srv := NewServer(":0", &fakeAggregator{agg: sampleAggregate()}, newFakeProfiles())

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/profile/nobody", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestProfileUpsertMissingUserID(t *testing.T) {
	srv := NewServer(":0", &fakeAggregator{agg: sampleAggregate()}, newFakeProfiles())

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/profile/upsert", strings.NewReader(`{"email":"x@y.z"}`)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}
