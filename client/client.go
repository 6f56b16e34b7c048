// Package client is a typed HTTP client for the wealth-manager API.
// It mirrors what the single-page frontend does: login, reference
// management, transaction CRUD with filters, and the portfolio summary
// computed from whatever transactions are currently loaded.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sumit10612/wealth-manager/internal/models"
	"github.com/Sumit10612/wealth-manager/internal/portfolio"
)

// Client talks to one wealth-manager server. Construct with New, then
// Login (or SetToken) before calling protected methods.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs a bearer token obtained out of band.
func (c *Client) SetToken(token string) { c.token = token }

// APIError is a non-2xx response decoded from the server's
// {"error": msg} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Login exchanges the shared password for the bearer token and stores
// it on the client.
func (c *Client) Login(password string) error {
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	err := c.do(http.MethodPost, "/api/login",
		map[string]string{"password": password}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Health probes the unauthenticated health endpoint.
func (c *Client) Health() error {
	return c.do(http.MethodGet, "/api/health", nil, nil)
}

// Reference is one row of a reference table.
type Reference struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (c *Client) listReferences(path string) ([]Reference, error) {
	var out []Reference
	err := c.do(http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) createReference(path, name string) (Reference, error) {
	var out Reference
	err := c.do(http.MethodPost, path, map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) AssetTypes() ([]Reference, error) { return c.listReferences("/api/asset-types") }
func (c *Client) Platforms() ([]Reference, error)  { return c.listReferences("/api/platforms") }
func (c *Client) Accounts() ([]Reference, error)   { return c.listReferences("/api/accounts") }

func (c *Client) CreateAssetType(name string) (Reference, error) {
	return c.createReference("/api/asset-types", name)
}
func (c *Client) CreatePlatform(name string) (Reference, error) {
	return c.createReference("/api/platforms", name)
}
func (c *Client) CreateAccount(name string) (Reference, error) {
	return c.createReference("/api/accounts", name)
}

func (c *Client) DeleteAssetType(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/asset-types/%d", id), nil, nil)
}
func (c *Client) DeletePlatform(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/platforms/%d", id), nil, nil)
}
func (c *Client) DeleteAccount(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/accounts/%d", id), nil, nil)
}

// TransactionFilter narrows Transactions. Zero-value fields do not
// constrain; set fields must match exactly and compose with AND.
type TransactionFilter struct {
	AssetType string
	Platform  string
	Account   string
}

// TransactionInput is the full field set submitted on create/update.
// Platform and Account may be nil; Units/Nav/Amount zero is a real
// zero, not an omission.
type TransactionInput struct {
	SchemeName      string  `json:"scheme_name"`
	AssetType       string  `json:"asset_type"`
	TransactionType string  `json:"transaction_type"`
	Units           float64 `json:"units"`
	Nav             float64 `json:"nav"`
	Amount          float64 `json:"amount"`
	Date            string  `json:"date"`
	Platform        *string `json:"platform,omitempty"`
	Account         *string `json:"account,omitempty"`
}

// Transactions lists transactions newest first, optionally filtered.
func (c *Client) Transactions(f TransactionFilter) ([]models.Transaction, error) {
	q := url.Values{}
	if f.AssetType != "" {
		q.Set("assetType", f.AssetType)
	}
	if f.Platform != "" {
		q.Set("platform", f.Platform)
	}
	if f.Account != "" {
		q.Set("account", f.Account)
	}
	path := "/api/transactions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []models.Transaction
	err := c.do(http.MethodGet, path, nil, &out)
	return out, err
}

// Transaction fetches one transaction by id.
func (c *Client) Transaction(id uint) (models.Transaction, error) {
	var out models.Transaction
	err := c.do(http.MethodGet, fmt.Sprintf("/api/transactions/%d", id), nil, &out)
	return out, err
}

// CreateTransaction submits a new transaction and returns its id.
func (c *Client) CreateTransaction(in TransactionInput) (uint, error) {
	var resp struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	err := c.do(http.MethodPost, "/api/transactions", in, &resp)
	return resp.ID, err
}

// UpdateTransaction overwrites every field of the transaction with the
// given id.
func (c *Client) UpdateTransaction(id uint, in TransactionInput) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/transactions/%d", id), in, nil)
}

// DeleteTransaction removes a transaction by id.
func (c *Client) DeleteTransaction(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/transactions/%d", id), nil, nil)
}

// Summary aggregates a loaded transaction list: Sell amounts count
// negative, everything else positive, with per-asset-type subtotals.
func Summary(txs []models.Transaction) portfolio.Summary {
	return portfolio.Summarize(txs)
}

// SummaryFor narrows a full summary to one asset type, the way the
// frontend does when an asset-type filter is active.
func SummaryFor(txs []models.Transaction, assetType string) portfolio.Summary {
	return portfolio.Narrow(portfolio.Summarize(txs), txs, assetType)
}
