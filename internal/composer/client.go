package composer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roomviz/internal/catalog"
	"roomviz/internal/domain"
)

type requestIDKey struct{}

// WithRequestID attaches an id sent as X-Request-ID on every call made with
// ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Client talks to the edit server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient defaults to a client with a generous timeout since a single edit
// can take minutes.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Minute}
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost:5000"
	}
	return &Client{baseURL: base, httpClient: httpClient}
}

// Edit posts req to /edit-room. Any failure is wrapped in ErrTransport.
func (c *Client) Edit(ctx context.Context, req domain.EditRequest) (*domain.EditResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	var out domain.EditResponse
	if err := c.do(ctx, http.MethodPost, "/edit-room", bytes.NewReader(body), &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Image == "" {
		return nil, fmt.Errorf("%w: server reported no image", domain.ErrTransport)
	}
	return &out, nil
}

func (c *Client) CurrentModel(ctx context.Context) (string, error) {
	var out domain.ModelResponse
	if err := c.do(ctx, http.MethodGet, "/current-model", nil, &out); err != nil {
		return "", err
	}
	return out.CurrentModel, nil
}

func (c *Client) Catalog(ctx context.Context) (*catalog.Listing, error) {
	var out catalog.Listing
	if err := c.do(ctx, http.MethodGet, "/catalog", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tile downloads the rendered texture of a catalog tile.
func (c *Client) Tile(ctx context.Context, id string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/catalog/tiles/"+url.PathEscape(id)+".png", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read tile: %v", domain.ErrTransport, err)
	}
	return data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrTransport, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var apiErr domain.ErrorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%w: status %d: %s", domain.ErrTransport, resp.StatusCode, apiErr.Error)
	}
	if msg := strings.TrimSpace(string(data)); msg != "" {
		return fmt.Errorf("%w: status %d: %s", domain.ErrTransport, resp.StatusCode, msg)
	}
	return fmt.Errorf("%w: status %d", domain.ErrTransport, resp.StatusCode)
}
