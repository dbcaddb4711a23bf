package service

import (
	"context"
	"time"

	"smart_fridge/internal/expiry"
	"smart_fridge/internal/models"
)

// Shown when the series is empty.
const (
	fallbackFridgeTempC = 3.5
	fallbackPowerW      = 120.0
)

const statusOnline = "ONLINE"

// DashboardSummary is the overview panel of the dashboard.
type DashboardSummary struct {
	Status       string                  `json:"status"`
	TotalItems   int                     `json:"total_items"`
	ExpiringSoon int                     `json:"expiring_soon"`
	Categories   map[models.Category]int `json:"categories"`
	FridgeTempC  float64                 `json:"fridge_temp_c"`
	FreezerTempC float64                 `json:"freezer_temp_c"`
	HumidityPct  float64                 `json:"humidity_pct"`
	PowerW       float64                 `json:"power_w"`
	Scanning     bool                    `json:"scanning"`
	Cooking      bool                    `json:"cooking"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

type DashboardService struct {
	inventory Inventory
	telemetry Telemetry
	clock     Clock

	scanner Scanner
	recipes Recipes
}

func NewDashboardService(inventory Inventory, telemetry Telemetry, clock Clock) *DashboardService {
	return &DashboardService{inventory: inventory, telemetry: telemetry, clock: clock}
}

// WithBusySources lets the summary report in-flight scans and recipes.
func (s *DashboardService) WithBusySources(scanner Scanner, recipes Recipes) *DashboardService {
	s.scanner = scanner
	s.recipes = recipes
	return s
}

// GetSummary counts items and takes the latest telemetry sample.
func (s *DashboardService) GetSummary(ctx context.Context) (DashboardSummary, error) {
	entries := s.inventory.List(ctx)

	sum := DashboardSummary{
		Status:      statusOnline,
		TotalItems:  len(entries),
		Categories:  make(map[models.Category]int),
		FridgeTempC: fallbackFridgeTempC,
		PowerW:      fallbackPowerW,
		UpdatedAt:   s.clock().UTC(),
	}
	for _, e := range entries {
		if expiry.ExpiringSoon(e.DaysRemaining) {
			sum.ExpiringSoon++
		}
		sum.Categories[e.Category]++
	}

	series, err := s.telemetry.Series(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	if n := len(series); n > 0 {
		last := series[n-1]
		sum.FridgeTempC = last.FridgeTempC
		sum.FreezerTempC = last.FreezerTempC
		sum.HumidityPct = last.HumidityPct
		sum.PowerW = last.PowerW
	}

	if s.scanner != nil {
		sum.Scanning = s.scanner.Busy()
	}
	if s.recipes != nil {
		sum.Cooking = s.recipes.Busy()
	}
	return sum, nil
}
