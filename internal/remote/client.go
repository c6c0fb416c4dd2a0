// Package remote provides the HTTP client for the upstream money manager API.
// The upstream API is the single source of truth for transactions and
// categories; this client never caches, retries, or reorders anything.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/models"
)

// Client communicates with the upstream money manager API.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a new upstream API client. authToken may be empty; when
// set it is attached as a bearer token to every request.
func NewClient(baseURL, authToken string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: httpClient,
	}
}

// collection returns the upstream path segment for a ledger's transactions.
func collection(lt models.LedgerType) string {
	if lt == models.LedgerTypeIncome {
		return "incomes"
	}
	return "expenses"
}

// ListTransactions fetches the full current transaction set for the ledger.
func (c *Client) ListTransactions(ctx context.Context, lt models.LedgerType) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.getJSON(ctx, "/"+collection(lt), &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListCategories fetches the full current category set for the ledger.
func (c *Client) ListCategories(ctx context.Context, lt models.LedgerType) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "/categories/"+string(lt), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// NewTransaction is the payload for creating a transaction. The id is
// deliberately absent: the upstream API assigns it.
type NewTransaction struct {
	Name       string      `json:"name"`
	CategoryID string      `json:"categoryId"`
	Amount     json.Number `json:"amount"`
	Date       string      `json:"date"`
	Icon       string      `json:"icon,omitempty"`
}

// CreateTransaction submits a new transaction and returns the created record.
func (c *Client) CreateTransaction(ctx context.Context, lt models.LedgerType, draft NewTransaction) (*models.Transaction, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("marshaling transaction: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/"+collection(lt), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("", fmt.Errorf("creating transaction: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	// The upstream API answers 201 for creates; tolerate a plain 200 too.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, upstreamError(resp)
	}

	var created models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, apperrors.Upstream("", fmt.Errorf("decoding created transaction: %w", err))
	}
	return &created, nil
}

// DeleteTransaction deletes the transaction with the given id. Deleting an
// already-deleted id is an upstream failure and is propagated verbatim.
func (c *Client) DeleteTransaction(ctx context.Context, lt models.LedgerType, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/"+collection(lt)+"/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Upstream("", fmt.Errorf("deleting transaction: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamError(resp)
	}
	return nil
}

// DownloadExport fetches the spreadsheet export for the ledger as raw bytes.
func (c *Client) DownloadExport(ctx context.Context, lt models.LedgerType) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/excel/download/"+string(lt), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("", fmt.Errorf("downloading export: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Upstream("", fmt.Errorf("reading export stream: %w", err))
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Upstream("", fmt.Errorf("fetching %s: %w", path, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return upstreamError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Upstream("", fmt.Errorf("decoding %s response: %w", path, err))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("creating request: %w", err))
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	return req, nil
}

// upstreamError converts a non-success upstream response into an AppError,
// preferring the server-provided message when one is present in the body.
func upstreamError(resp *http.Response) error {
	cause := fmt.Errorf("unexpected status %d from %s", resp.StatusCode, resp.Request.URL.Path)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return apperrors.Upstream(body.Message, cause)
	}
	return apperrors.Upstream("", cause)
}
