package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distlab/internal/config"
)

func newTestApp() *App {
	return NewApp(config.Load())
}

func postJSON(t *testing.T, app *App, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)
	return w
}

func getPath(app *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	app := newTestApp()
	w := postJSON(t, app, "/api/analyze", map[string]interface{}{
		"function": "x",
		"range":    "0<x<2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Validation struct {
			TotalMass float64 `json:"total_mass"`
			Valid     bool    `json:"valid"`
		} `json:"validation"`
		Moments struct {
			Mean float64 `json:"mean"`
		} `json:"moments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.False(t, out.Validation.Valid)
	assert.InDelta(t, 2.0, out.Validation.TotalMass, 1e-3)
	assert.InDelta(t, 4.0/3.0, out.Moments.Mean, 1e-3)
}

func TestAnalyzeEndpointDivergence(t *testing.T) {
	app := newTestApp()
	w := postJSON(t, app, "/api/analyze", map[string]interface{}{
		"function": "e^(-x)",
		"range":    "-inf<x<inf",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "diverges")
}

func TestAnalyzeEndpointBadInput(t *testing.T) {
	app := newTestApp()

	w := postJSON(t, app, "/api/analyze", map[string]interface{}{
		"function": "",
		"range":    "0<x<1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMomentEndpoint(t *testing.T) {
	app := newTestApp()
	w := postJSON(t, app, "/api/moment", map[string]interface{}{
		"function": "1",
		"range":    "0<x<1",
		"r":        3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.InDelta(t, 0.25, out["moment"], 1e-6)
}

func TestBinomialEndpoint(t *testing.T) {
	app := newTestApp()
	w := getPath(app, "/api/models/binomial?n=10&p=0.5&k=5")
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.InDelta(t, 0.24609, out["at"].(float64), 1e-4)
	assert.InDelta(t, 0.62305, out["cdf"].(float64), 1e-4)

	w = getPath(app, "/api/models/binomial?n=0&p=0.5&k=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNormalEndpoint(t *testing.T) {
	app := newTestApp()
	w := getPath(app, "/api/models/normal?mu=0&sigma=1&x=1.96")
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.InDelta(t, 0.9750, out["cdf"].(float64), 1e-3)

	// Inverse lookup path.
	w = getPath(app, "/api/models/normal?mu=0&sigma=1&p=0.975")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.InDelta(t, 1.96, out["quantile"].(float64), 1e-2)
}

func TestChartEndpoints(t *testing.T) {
	app := newTestApp()

	w := getPath(app, "/api/models/binomial/chart?n=10&p=0.5")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Points []struct{ X, Y float64 } `json:"points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out.Points, 11)

	w = getPath(app, "/api/models/normal/chart?mu=0&sigma=1&points=25")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out.Points, 25)
}
