package service

import (
	"context"
	"time"

	"smart_fridge/internal/logger"
	"smart_fridge/internal/metrics"
	"smart_fridge/internal/models"
	"smart_fridge/internal/repository"
)

// Clock returns the current time; "today" is its calendar date.
type Clock func() time.Time

// VisionModel detects food items on an image and answers with raw JSON text.
type VisionModel interface {
	DetectItems(ctx context.Context, image []byte, mimeType string) (string, error)
}

// TextModel answers a prompt with free-form text.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// TelemetrySource produces a full sensor series. A real sensor integration
// plugs in here without touching the dashboard code.
type TelemetrySource interface {
	Generate(ctx context.Context) ([]models.SensorSample, error)
}

type Authorization interface {
	Enabled() bool
	SignIn(password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Inventory is the owned item collection. Every mutation goes through it.
type Inventory interface {
	Add(ctx context.Context, item models.InventoryItem) models.InventoryItem
	Remove(ctx context.Context, id string) bool
	MergeDetected(ctx context.Context, detected []models.DetectedItem) int
	List(ctx context.Context) []InventoryEntry
	Snapshot(ctx context.Context) []models.InventoryItem
}

// Scanner turns an image into merged inventory items.
type Scanner interface {
	Scan(ctx context.Context, image []byte, mimeType string) (int, error)
	Busy() bool
}

// Recipes suggests a recipe from the current inventory.
type Recipes interface {
	Suggest(ctx context.Context, preference string) (Recipe, error)
	Busy() bool
}

// Telemetry exposes the session's sensor series.
type Telemetry interface {
	Series(ctx context.Context) ([]models.SensorSample, error)
}

// Dashboard aggregates inventory and telemetry into the overview numbers.
type Dashboard interface {
	GetSummary(ctx context.Context) (DashboardSummary, error)
}

// EventLog exposes the append-only activity log with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.FridgeEvent, error)
}

// Service is the application state object handed to the HTTP layer.
type Service struct {
	Inventory
	Scanner
	Recipes
	Telemetry
	Dashboard
	EventLog
	Authorization
}

// Deps are the collaborators that do not come from the repository layer.
type Deps struct {
	Vision    VisionModel
	Text      TextModel
	Telemetry TelemetrySource
	Metrics   *metrics.Metrics
	Log       *logger.Logger
	Clock     Clock
	Auth      AuthConfig
	SeedDemo  bool
}

// NewService wires the repository layer and external models into services.
func NewService(repos *repository.Repository, deps Deps) (*Service, error) {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	inventory := NewInventoryService(repos.EventRepo, deps.Metrics, clock).WithLogger(deps.Log)
	if deps.SeedDemo {
		inventory.Seed(DemoItems(models.DateOf(clock())))
	}

	auth, err := NewAuthService(deps.Auth, clock)
	if err != nil {
		return nil, err
	}

	telemetry := NewTelemetryService(deps.Telemetry)
	scanner := NewScanService(deps.Vision, inventory, repos.EventRepo, deps.Metrics, clock).WithLogger(deps.Log)
	recipes := NewRecipeService(deps.Text, inventory, repos.EventRepo, deps.Metrics, clock).WithLogger(deps.Log)

	return &Service{
		Inventory:     inventory,
		Scanner:       scanner,
		Recipes:       recipes,
		Telemetry:     telemetry,
		Dashboard:     NewDashboardService(inventory, telemetry, clock).WithBusySources(scanner, recipes),
		EventLog:      NewEventLogService(repos.EventRepo),
		Authorization: auth,
	}, nil
}
