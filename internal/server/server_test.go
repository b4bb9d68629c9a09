package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aihustle/internal/crypto"
	"aihustle/internal/domain"
	"aihustle/internal/server"
	"aihustle/internal/services/builder"
	"aihustle/internal/services/outreach"
	"aihustle/internal/services/strategist"
)

type staticLeads []domain.Lead

func (s staticLeads) LoadLeads() []domain.Lead { return s }

type staticResearch domain.ResearchData

func (s staticResearch) LoadResearch() domain.ResearchData { return domain.ResearchData(s) }

func agents(log *zap.Logger) server.Agents {
	return server.Agents{
		Builder: builder.New(log),
		Outreach: outreach.New(staticLeads{
			{"name": "Ana", "status": "cold"},
			{"name": "Bo", "status": "warm"},
		}, log),
		Strategist: strategist.New(staticResearch{"market_size": "$1B"}, log),
	}
}

func newHandler(opts server.Options) http.Handler {
	return server.New(opts, agents(zap.NewNop()), zap.NewNop()).Handler()
}

func do(h http.Handler, method, path, body, remote string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if remote != "" {
		req.RemoteAddr = remote
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDashboard(t *testing.T) {
	h := newHandler(server.Options{})

	rec := do(h, http.MethodGet, "/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "$1000")
	assert.Contains(t, body, "8.5%")
	assert.Contains(t, body, "AI Content Repurposing Kit")
	assert.Contains(t, body, "$47.00")
}

func TestDashboard_ExemptFromRateLimits(t *testing.T) {
	h := newHandler(server.Options{DefaultPerHour: 1, StrategistPerMinute: 1})

	for i := 0; i < 150; i++ {
		rec := do(h, http.MethodGet, "/", "", "10.0.0.1:1111")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}
}

func TestDashboard_Head(t *testing.T) {
	rec := do(newHandler(server.Options{}), http.MethodHead, "/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestStrategist_OK(t *testing.T) {
	h := newHandler(server.Options{})

	rec := do(h, http.MethodPost, "/api/strategist", `{"niche":"ai tools"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "success", got["status"])
	assert.Contains(t, got, "analysis")
	assert.Nil(t, got["analysis"])
	assert.NotEmpty(t, got["timestamp"])
	assert.Equal(t, map[string]any{"api_version": "2.1", "mobile_optimized": true}, got["metadata"])
}

func TestStrategist_BadBodies(t *testing.T) {
	h := newHandler(server.Options{StrategistPerMinute: 100})

	for name, body := range map[string]string{
		"malformed":        `{"niche":`,
		"empty":            "",
		"trailing garbage": `{} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/api/strategist", body, "")
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"Analysis failed"}`, rec.Body.String())
		})
	}
}

func TestStrategist_ErrorDetailOnlyLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := server.New(server.Options{}, agents(zap.NewNop()), zap.New(core)).Handler()

	rec := do(h, http.MethodPost, "/api/strategist", `not json`, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "invalid character")
	errs := logs.FilterMessage("strategist error").All()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].ContextMap()["error"], "decode body")
}

func TestStrategist_RateLimitedPerClient(t *testing.T) {
	h := newHandler(server.Options{})

	for i := 1; i <= 10; i++ {
		rec := do(h, http.MethodPost, "/api/strategist", `{}`, "198.51.100.7:4000")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := do(h, http.MethodPost, "/api/strategist", `{}`, "198.51.100.7:4001")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	other := do(h, http.MethodPost, "/api/strategist", `{}`, "198.51.100.8:4000")
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestDefaultLimit_CountedPerRoute(t *testing.T) {
	h := newHandler(server.Options{DefaultPerHour: 2})
	const remote = "203.0.113.5:9000"

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/stats", "", remote).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/api/stats", "", remote).Code)

	// other routes keep their own quota
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/builder/templates", "", remote).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/outreach/dms?type=cold", "", remote).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/outreach/dms?type=warm", "", remote).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/api/outreach/dms", "", remote).Code,
		"query string does not start a new quota")

	// the strategist route has its own quota
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/strategist", `{}`, remote).Code)

	// and other clients are unaffected
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/stats", "", "203.0.113.6:9000").Code)
}

func TestStats(t *testing.T) {
	rec := do(newHandler(server.Options{}), http.MethodGet, "/api/stats", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily_target":"$1000","active_users":42,"conversion_rate":"8.5%"}`, rec.Body.String())
}

func TestCreateProduct(t *testing.T) {
	h := newHandler(server.Options{})

	rec := do(h, http.MethodPost, "/api/builder/products", `{"type":"prompt_kit"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ok domain.ProductResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	assert.Equal(t, "created", ok.Status)
	assert.Equal(t, "AI Content Repurposing Kit", ok.Product.Name)

	rec = do(h, http.MethodPost, "/api/builder/products", `{"type":"course"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"Product type not found"}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/builder/products", `nope`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDMs(t *testing.T) {
	h := newHandler(server.Options{})

	rec := do(h, http.MethodGet, "/api/outreach/dms", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cold domain.DMResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cold))
	require.NotNil(t, cold.Template)
	assert.Contains(t, *cold.Template, "{name}")
	require.Len(t, cold.SuggestedLeads, 1)
	assert.Equal(t, "Ana", cold.SuggestedLeads[0]["name"])

	rec = do(h, http.MethodGet, "/api/outreach/dms?type=nonexistent", "", "")
	assert.JSONEq(t, `{"template":null,"suggested_leads":[],"optimal_send_times":["9-11 AM","2-4 PM"]}`, rec.Body.String())
}

func TestAPIKeyGuard(t *testing.T) {
	digest := crypto.APIKeyDigest("your-secret-key")
	h := newHandler(server.Options{APIKeyDigest: digest})

	rec := do(h, http.MethodGet, "/api/builder/templates", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/builder/templates", nil)
	req.Header.Set(crypto.APIKeyHeader, "wrong")
	bad := httptest.NewRecorder()
	h.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusUnauthorized, bad.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/builder/templates", nil)
	req.Header.Set(crypto.APIKeyHeader, digest)
	good := httptest.NewRecorder()
	h.ServeHTTP(good, req)
	assert.Equal(t, http.StatusOK, good.Code)

	// stats and the strategist stay open
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/stats", "", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/strategist", `{}`, "").Code)
}

func TestAPIKeyGuard_DisabledByDefault(t *testing.T) {
	rec := do(newHandler(server.Options{}), http.MethodGet, "/api/builder/templates", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

type panickyBuilder struct{ domain.BuilderService }

func (panickyBuilder) GetTemplates() domain.Templates { panic("template store exploded") }

type panickyStrategist struct{ domain.StrategistService }

func (panickyStrategist) Analyze(any) domain.AnalysisResult { panic("no analysis") }

func TestPanicsBecome500(t *testing.T) {
	a := agents(zap.NewNop())
	a.Builder = panickyBuilder{a.Builder}
	a.Strategist = panickyStrategist{a.Strategist}
	h := server.New(server.Options{}, a, zap.NewNop()).Handler()

	rec := do(h, http.MethodGet, "/api/builder/templates", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/strategist", `{}`, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Analysis failed"}`, rec.Body.String())
}

func TestBodyLimit_StrategistAnswersAnalysisFailed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := server.New(server.Options{MaxBodyBytes: 16}, agents(zap.NewNop()), zap.New(core)).Handler()

	body := fmt.Sprintf(`{"pad":%q}`, strings.Repeat("x", 64))
	rec := do(h, http.MethodPost, "/api/strategist", body, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Analysis failed"}`, rec.Body.String())
	errs := logs.FilterMessage("strategist error").All()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].ContextMap()["error"], "read body")
}

func TestBodyLimit_ProductsRejectsOversizedBody(t *testing.T) {
	h := newHandler(server.Options{MaxBodyBytes: 16})

	body := fmt.Sprintf(`{"type":%q}`, strings.Repeat("x", 64))
	rec := do(h, http.MethodPost, "/api/builder/products", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestID(t *testing.T) {
	h := newHandler(server.Options{})

	rec := do(h, http.MethodGet, "/healthz", "", "")
	assert.Len(t, rec.Header().Get(server.RequestIDHeader), 36)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "abc-123")
	echoed := httptest.NewRecorder()
	h.ServeHTTP(echoed, req)
	assert.Equal(t, "abc-123", echoed.Header().Get(server.RequestIDHeader))
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := server.New(server.Options{}, agents(zap.NewNop()), zap.New(core)).Handler()

	do(h, http.MethodGet, "/api/stats", "", "192.0.2.44:5555")

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "http", entries[0].LoggerName)
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/stats", fields["path"])
	assert.Equal(t, "192.0.2.44", fields["remote"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newHandler(server.Options{}), http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}
