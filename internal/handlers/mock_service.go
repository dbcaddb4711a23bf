package handlers

import (
	"context"
	"net/http"
	"time"

	"smart_fridge/internal/models"
	"smart_fridge/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	enabled    bool
	signInTok  string
	signInErr  error
	parseSub   string
	parseErr   error
	lastSignIn string
	lastParse  string
}

func (m *mockAuth) Enabled() bool { return m.enabled }
func (m *mockAuth) SignIn(password string) (string, error) {
	m.lastSignIn = password
	return m.signInTok, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParse = token
	return m.parseSub, m.parseErr
}

type mockInventory struct {
	entries  []service.InventoryEntry
	removeOK bool

	added      []models.InventoryItem
	removedIDs []string
}

func (m *mockInventory) Add(ctx context.Context, item models.InventoryItem) models.InventoryItem {
	if item.ID == "" {
		item.ID = "new-id"
	}
	m.added = append(m.added, item)
	return item
}
func (m *mockInventory) Remove(ctx context.Context, id string) bool {
	m.removedIDs = append(m.removedIDs, id)
	return m.removeOK
}
func (m *mockInventory) MergeDetected(ctx context.Context, detected []models.DetectedItem) int {
	return len(detected)
}
func (m *mockInventory) List(ctx context.Context) []service.InventoryEntry { return m.entries }
func (m *mockInventory) Snapshot(ctx context.Context) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.InventoryItem)
	}
	return out
}

type mockScanner struct {
	added    int
	err      error
	busy     bool
	calls    int
	lastImg  []byte
	lastMime string
}

func (m *mockScanner) Scan(ctx context.Context, image []byte, mimeType string) (int, error) {
	m.calls++
	m.lastImg = image
	m.lastMime = mimeType
	return m.added, m.err
}
func (m *mockScanner) Busy() bool { return m.busy }

type mockRecipes struct {
	recipe   service.Recipe
	err      error
	busy     bool
	lastPref string
}

func (m *mockRecipes) Suggest(ctx context.Context, preference string) (service.Recipe, error) {
	m.lastPref = preference
	return m.recipe, m.err
}
func (m *mockRecipes) Busy() bool { return m.busy }

type mockTelemetry struct {
	series []models.SensorSample
	err    error
}

func (m *mockTelemetry) Series(ctx context.Context) ([]models.SensorSample, error) {
	return m.series, m.err
}

type mockDashboard struct {
	summary service.DashboardSummary
	err     error
}

func (m *mockDashboard) GetSummary(ctx context.Context) (service.DashboardSummary, error) {
	return m.summary, m.err
}

type mockEventLog struct {
	resp     []models.FridgeEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.FridgeEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
