package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart_fridge/internal/gemini"
	"smart_fridge/internal/metrics"
	"smart_fridge/internal/repository"
	"smart_fridge/internal/repository/db"
	"smart_fridge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini answers detection requests with one item and everything else
// with a short recipe.
func fakeGemini(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		text := "# Yogurt Bowl\n- Yogurt\n1. Serve cold"
		if bytes.Contains(body, []byte("inlineData")) {
			text = `[{"name":"Yogurt","quantity":2,"unit":"cups","category":"dairy","estimatedExpiryDays":5}]`
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestEndToEnd_ScanRecipeAndLogs(t *testing.T) {
	model := fakeGemini(t)
	defer model.Close()

	sqlDB, err := db.InitDB(db.MemoryPath)
	require.NoError(t, err)
	defer sqlDB.Close()

	client := gemini.New(gemini.Config{APIKey: "test-key", BaseURL: model.URL})
	m := metrics.New()
	services, err := service.NewService(repository.NewRepository(sqlDB), service.Deps{
		Vision:    client,
		Text:      client,
		Telemetry: service.NewSimulatorSource(1),
		Metrics:   m,
		Auth:      service.AuthConfig{Password: "fridge-door", SigningKey: "k"},
		SeedDemo:  true,
	})
	require.NoError(t, err)
	gin.SetMode(gin.TestMode)
	r := NewHandler(services, nil, m).InitRoutes()

	// sign in
	w := postJSON(r, "/auth/sign-in", `{"password":"fridge-door"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))

	do := func(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, body)
		req.Header.Set("Authorization", "Bearer "+tok.Token)
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		r.ServeHTTP(rec, req)
		return rec
	}

	// scan merges the detection in front of the demo items
	w = do(http.MethodPost, "/api/v1/scan", "image/jpeg", bytes.NewReader(jpegBytes))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(http.MethodGet, "/api/v1/inventory", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inv struct {
		Count int `json:"count"`
		Items []struct {
			Name          string `json:"name"`
			Category      string `json:"category"`
			DaysRemaining int    `json:"days_remaining"`
			Severity      string `json:"severity"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	require.Equal(t, 5, inv.Count)
	assert.Equal(t, "Yogurt", inv.Items[0].Name)
	assert.Equal(t, "Dairy", inv.Items[0].Category)
	assert.Equal(t, 5, inv.Items[0].DaysRemaining)
	assert.Equal(t, "warning", inv.Items[0].Severity)

	// recipe
	w = do(http.MethodPost, "/api/v1/recipes", "application/json", strings.NewReader(`{"preference":"quick"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var recipe service.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.False(t, recipe.Fallback)
	assert.Len(t, recipe.Blocks, 3)

	// dashboard
	w = do(http.MethodGet, "/api/v1/dashboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sum service.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, 5, sum.TotalItems)
	assert.Equal(t, 2, sum.ExpiringSoon)

	// activity log
	w = do(http.MethodGet, "/api/v1/logs/?type=scan_merged", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var logs struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Equal(t, 1, logs.Count)

	w = do(http.MethodGet, "/api/v1/logs/?type=recipe_generated", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Equal(t, 1, logs.Count)

	// metrics
	w = do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "smart_fridge_")
}
