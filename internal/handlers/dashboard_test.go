package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart_fridge/internal/models"
	"smart_fridge/internal/service"
)

func TestTelemetryHandler(t *testing.T) {
	tel := &mockTelemetry{series: []models.SensorSample{
		{Time: "0:00", FridgeTempC: 3.2, FreezerTempC: -17, HumidityPct: 42, PowerW: 110},
		{Time: "1:00", FridgeTempC: 3.8, FreezerTempC: -16.4, HumidityPct: 44, PowerW: 131},
	}}
	r := newTestRouter(&service.Service{Telemetry: tel})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/telemetry", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count   int                   `json:"count"`
		Samples []models.SensorSample `json:"samples"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 2 || out.Samples[1].Time != "1:00" || out.Samples[1].PowerW != 131 {
		t.Fatalf("unexpected response: %+v", out)
	}

	tel.err = errors.New("sensor offline")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/telemetry", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestDashboardHandler(t *testing.T) {
	dash := &mockDashboard{summary: service.DashboardSummary{Status: "ONLINE", TotalItems: 5, ExpiringSoon: 1}}
	r := newTestRouter(&service.Service{Dashboard: dash})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out service.DashboardSummary
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.TotalItems != 5 || out.ExpiringSoon != 1 || out.Status != "ONLINE" {
		t.Fatalf("unexpected summary: %+v", out)
	}

	dash.err = errors.New("boom")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"status":"ok"}` {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status=%d", w.Code)
	}
}
