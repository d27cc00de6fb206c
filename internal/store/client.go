package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/Elxixau/TaskStatus-Manager/internal/projects/domain"
)

const (
	// DefaultTimeout bounds list and mutation calls against the store.
	DefaultTimeout = 15 * time.Second
)

// Client talks to a tabular record store over HTTP using the
// spreadsheet-style contract: GET <base>/ for the full set, POST <base>/
// with form fields to append, PATCH/DELETE <base>/id/{id} to mutate.
//
// The store assigns nothing: ids and input timestamps are stamped here
// before the request goes out, and the store is trusted to persist rows
// verbatim. Calls are rate limited because hosted tabular APIs throttle
// aggressively.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter

	// now is swappable in tests.
	now func() time.Time
}

// NewClient creates a store client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		now:     time.Now,
	}
}

// List fetches the entire record set. There is no pagination.
func (c *Client) List(ctx context.Context) ([]domain.ProjectRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.NetworkError{Op: "list", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "list", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ServerError{Op: "list", StatusCode: resp.StatusCode}
	}

	var records []domain.ProjectRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// Create appends a new record. A missing id is assigned here and a
// missing waktu_input is stamped with the current time; both are
// immutable afterwards. The returned record is the row as sent.
func (c *Client) Create(ctx context.Context, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	if rec.ID == "" {
		id, err := domain.NewRecordID()
		if err != nil {
			return nil, err
		}
		rec.ID = id
	}
	if rec.WaktuInput == "" {
		rec.WaktuInput = c.now().Format("2/1/2006, 15.04.05")
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fields := map[string]string{
		"name":        rec.Name,
		"category":    rec.Category,
		"konsep":      rec.Konsep,
		"status":      rec.Status,
		"payment":     rec.Payment,
		"nominal":     rec.Nominal,
		"id":          rec.ID,
		"waktu_input": rec.WaktuInput,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.NetworkError{Op: "create", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "create", Err: err}
	}
	defer drain(resp)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: store rejected payload", domain.ErrValidation)
	case resp.StatusCode >= 300:
		return nil, &domain.ServerError{Op: "create", StatusCode: resp.StatusCode}
	}

	return &rec, nil
}

// Update replaces the full row addressed by id. The payload carries the
// whole record under a "data" key; the store applies it as a row replace.
func (c *Client) Update(ctx context.Context, id string, rec domain.ProjectRecord) (*domain.ProjectRecord, error) {
	payload, err := json.Marshal(map[string]domain.ProjectRecord{"data": rec})
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.NetworkError{Op: "update", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		c.baseURL+"/id/"+url.PathEscape(id), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "update", Err: err}
	}
	defer drain(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode >= 300:
		return nil, &domain.ServerError{Op: "update", StatusCode: resp.StatusCode}
	}

	rec.ID = id
	return &rec, nil
}

// Delete removes the row addressed by id. Repeating a delete surfaces
// ErrNotFound; callers that treat delete as idempotent may ignore it.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.NetworkError{Op: "delete", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/id/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "delete", Err: err}
	}
	defer drain(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 300:
		return &domain.ServerError{Op: "delete", StatusCode: resp.StatusCode}
	}
	return nil
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
