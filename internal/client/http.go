package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"aihustle/internal/crypto"
	"aihustle/internal/domain"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method  string
	URL     string
	Code    int
	Message string // the body's "error" field, if any
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
}

// HTTP talks to a running server.
type HTTP struct {
	Base   string
	HTTP   *http.Client
	APIKey string // sent as X-API-KEY when set
}

// NewHTTP returns a client for base; a nil hc means http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: base, HTTP: hc}
}

// Analyze posts input to the strategist. A nil input is sent as null.
func (c *HTTP) Analyze(ctx context.Context, input any) (domain.AnalysisResult, error) {
	var out domain.AnalysisResult
	body, err := jsonBody(input)
	if err != nil {
		return out, err
	}
	return out, c.do(ctx, http.MethodPost, "/api/strategist", body, &out)
}

// Stats fetches the dashboard summary.
func (c *HTTP) Stats(ctx context.Context) (domain.Stats, error) {
	var out domain.Stats
	return out, c.do(ctx, http.MethodGet, "/api/stats", nil, &out)
}

// Templates fetches the builder's template names.
func (c *HTTP) Templates(ctx context.Context) (domain.Templates, error) {
	var out domain.Templates
	return out, c.do(ctx, http.MethodGet, "/api/builder/templates", nil, &out)
}

// CreateProduct asks the builder for a product. A lookup miss is not an
// error; check the result's OK.
func (c *HTTP) CreateProduct(ctx context.Context, productType domain.ProductType) (domain.ProductResult, error) {
	var out domain.ProductResult
	body, err := jsonBody(struct {
		Type domain.ProductType `json:"type"`
	}{Type: productType})
	if err != nil {
		return out, err
	}
	return out, c.do(ctx, http.MethodPost, "/api/builder/products", body, &out)
}

// GenerateDMs fetches the outreach template and leads for leadType.
func (c *HTTP) GenerateDMs(ctx context.Context, leadType domain.LeadType) (domain.DMResult, error) {
	var out domain.DMResult
	path := "/api/outreach/dms"
	if leadType != "" {
		path += "?type=" + url.QueryEscape(string(leadType))
	}
	return out, c.do(ctx, http.MethodGet, path, nil, &out)
}

func jsonBody(v any) (io.Reader, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf, nil
}

func (c *HTTP) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set(crypto.APIKeyHeader, c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e domain.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Method: method, URL: u, Code: resp.StatusCode, Message: e.Error}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
