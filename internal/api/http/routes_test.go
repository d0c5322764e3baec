package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-mock-mcp/internal/mcpserver"
	"github.com/i474232898/weather-mock-mcp/internal/observability"
	"github.com/i474232898/weather-mock-mcp/internal/tools"
	"github.com/i474232898/weather-mock-mcp/internal/weather"
)

type readiness struct{ err error }

func (r readiness) Ready() error { return r.err }

func newTestApp(t *testing.T, ready ReadinessChecker) *fiber.App {
	t.Helper()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	tl := tools.New(weather.NewService(nil, metrics))

	app := NewApp("*")
	RegisterRoutes(app, tl, Options{
		MCPPath: "/mcp",
		MCP:     mcpserver.NewHandler(mcpserver.New(tl)),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Ready:   ready,
	})
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRootDescriptor(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d tools.Descriptor
	require.NoError(t, json.Unmarshal([]byte(body), &d))
	assert.Equal(t, "MCP Mock Weather Server", d.Server)
	assert.Equal(t, "HTTP Streamable", d.Transport)
	assert.Equal(t, "/mcp", d.MCPEndpoint)
	assert.Equal(t, "2025-03-26", d.ProtocolVersion)
	assert.Contains(t, d.Capabilities.Tools, "get_cities")
	assert.Contains(t, d.Capabilities.Tools, "get_weather")
}

func TestCORSHeaders(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://inspector.example")
	resp, _ := do(t, app, req)

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Mcp-Session-Id", resp.Header.Get("Access-Control-Expose-Headers"))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestHealth(t *testing.T) {
	resp, body := do(t, newTestApp(t, nil), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"weather-mock-mcp"}`, body)
}

func TestReadyz(t *testing.T) {
	resp, _ := do(t, newTestApp(t, readiness{}), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, newTestApp(t, readiness{err: errors.New("catalog broken")}),
		httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"status":"not ready","error":"catalog broken"}`, body)
}

func TestCitiesEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/cities?country=USA", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")
	assert.JSONEq(t, `["New York","Los Angeles","Chicago","Houston","Phoenix"]`, body)

	_, thai := do(t, app, httptest.NewRequest(http.MethodGet,
		"/api/v1/cities?country="+url.QueryEscape("ประเทศไทย"), nil))
	_, english := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/cities?country=thailand", nil))
	assert.Equal(t, english, thai)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", body)
}

func TestWeatherEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	var reading struct {
		City      *string `json:"city"`
		Condition string  `json:"condition"`
	}

	_, body := do(t, app, httptest.NewRequest(http.MethodGet,
		"/api/v1/weather?city="+url.QueryEscape("กรุงเทพ"), nil))
	require.NoError(t, json.Unmarshal([]byte(body), &reading))
	require.NotNil(t, reading.City)
	assert.Equal(t, "Bangkok", *reading.City)

	reading.City = nil
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/weather?city=Atlantis", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &reading))
	assert.Nil(t, reading.City)
	assert.True(t, weather.Condition(reading.Condition).Valid())
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/cities?country=uk", nil))
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `weather_mock_city_lookups_total{outcome="hit"} 1`)
}

func TestMCPInitializeThroughFiber(t *testing.T) {
	app := newTestApp(t, nil)

	payload := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{` +
		`"protocolVersion":"2025-03-26","capabilities":{},` +
		`"clientInfo":{"name":"test","version":"1.0.0"}}}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	resp, body := do(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var out struct {
		Result struct {
			ServerInfo struct {
				Name string `json:"name"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, tools.ServerID, out.Result.ServerInfo.Name)
}
