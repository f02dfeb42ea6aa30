// Package nessie implements the record-source port against a Nessie-style
// banking REST API.
package nessie

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rickeychiu/budgeteer/internal/core"
	"github.com/rickeychiu/budgeteer/internal/source"
)

const defaultTimeout = 15 * time.Second

// Client talks to the upstream API. All four operations are plain GETs
// authenticated with an API key query parameter.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ source.RecordSource = (*Client)(nil)

// New creates a client for the given base URL and API key. A non-positive
// timeout falls back to the default.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Wire shapes as the upstream returns them.
type (
	customerRecord struct {
		ID        string `json:"_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	accountRecord struct {
		ID         string `json:"_id"`
		CustomerID string `json:"customer_id"`
	}

	purchaseRecord struct {
		ID           string  `json:"_id"`
		MerchantID   string  `json:"merchant_id"`
		Amount       float64 `json:"amount"`
		PurchaseDate string  `json:"purchase_date"`
	}

	merchantRecord struct {
		ID       string   `json:"_id"`
		Name     string   `json:"name"`
		Address  string   `json:"address"`
		Category []string `json:"category"`
	}
)

func (c *Client) ListCustomers(ctx context.Context) ([]core.Customer, error) {
	var records []customerRecord
	if err := c.get(ctx, "list customers", "/customers", &records); err != nil {
		return nil, err
	}
	customers := make([]core.Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, core.Customer{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
		})
	}
	return customers, nil
}

func (c *Client) ListAccounts(ctx context.Context, customerID string) ([]core.Account, error) {
	var records []accountRecord
	path := fmt.Sprintf("/customers/%s/accounts", url.PathEscape(customerID))
	if err := c.get(ctx, "list accounts", path, &records); err != nil {
		return nil, err
	}
	accounts := make([]core.Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, core.Account{ID: r.ID, CustomerID: r.CustomerID})
	}
	return accounts, nil
}

func (c *Client) ListPurchases(ctx context.Context, accountID string) ([]core.Purchase, error) {
	var records []purchaseRecord
	path := fmt.Sprintf("/accounts/%s/purchases", url.PathEscape(accountID))
	if err := c.get(ctx, "list purchases", path, &records); err != nil {
		return nil, err
	}
	purchases := make([]core.Purchase, 0, len(records))
	for _, r := range records {
		purchases = append(purchases, core.Purchase{
			ID:           r.ID,
			MerchantID:   r.MerchantID,
			Amount:       r.Amount,
			PurchaseDate: r.PurchaseDate,
		})
	}
	return purchases, nil
}

func (c *Client) ListMerchants(ctx context.Context) ([]core.Merchant, error) {
	var records []merchantRecord
	if err := c.get(ctx, "list merchants", "/merchants", &records); err != nil {
		return nil, err
	}
	merchants := make([]core.Merchant, 0, len(records))
	for _, r := range records {
		merchants = append(merchants, core.Merchant{
			ID:            r.ID,
			Name:          r.Name,
			Address:       r.Address,
			RawCategories: r.Category,
		})
	}
	return merchants, nil
}

// get performs one authenticated GET and decodes the JSON list response.
// Every failure is wrapped in an UpstreamError naming op so the caller can
// tell which step of the lookup chain broke.
func (c *Client) get(ctx context.Context, op, path string, v any) error {
	u := c.baseURL + path + "?key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &core.UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &core.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &core.UpstreamError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &core.UpstreamError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
