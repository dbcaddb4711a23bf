package service

import (
	"context"
	"errors"
	"testing"

	"smart_fridge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type busyStub struct{ busy bool }

func (b busyStub) Scan(ctx context.Context, image []byte, mimeType string) (int, error) {
	return 0, nil
}

func (b busyStub) Suggest(ctx context.Context, preference string) (Recipe, error) {
	return Recipe{}, nil
}

func (b busyStub) Busy() bool { return b.busy }

func TestDashboard_Summary(t *testing.T) {
	inv := newTestInventory(nil)
	inv.Seed(DemoItems(testToday()))
	src := &stubSource{series: []models.SensorSample{
		{Time: "0:00", FridgeTempC: 3.1, FreezerTempC: -17, HumidityPct: 41, PowerW: 101},
		{Time: "1:00", FridgeTempC: 3.9, FreezerTempC: -16.5, HumidityPct: 44, PowerW: 133},
	}}
	dash := NewDashboardService(inv, NewTelemetryService(src), fixedClock).
		WithBusySources(busyStub{busy: true}, busyStub{})

	sum, err := dash.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ONLINE", sum.Status)
	assert.Equal(t, 4, sum.TotalItems)
	assert.Equal(t, 2, sum.ExpiringSoon)
	assert.Equal(t, map[models.Category]int{
		models.CategoryDairy:   2,
		models.CategoryProduce: 1,
		models.CategoryMeat:    1,
	}, sum.Categories)
	assert.Equal(t, 3.9, sum.FridgeTempC)
	assert.Equal(t, -16.5, sum.FreezerTempC)
	assert.Equal(t, 44.0, sum.HumidityPct)
	assert.Equal(t, 133.0, sum.PowerW)
	assert.True(t, sum.Scanning)
	assert.False(t, sum.Cooking)
	assert.Equal(t, testNow.UTC(), sum.UpdatedAt)
}

func TestDashboard_FallbacksWithoutSamples(t *testing.T) {
	dash := NewDashboardService(newTestInventory(nil), NewTelemetryService(&stubSource{}), fixedClock)

	sum, err := dash.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, sum.TotalItems)
	assert.Zero(t, sum.ExpiringSoon)
	assert.Equal(t, 3.5, sum.FridgeTempC)
	assert.Equal(t, 120.0, sum.PowerW)
}

func TestDashboard_ExpiredItemsCountAsExpiringSoon(t *testing.T) {
	inv := newTestInventory(nil)
	ctx := context.Background()
	inv.Add(ctx, models.InventoryItem{Name: "Old Milk", ExpiryDate: testToday().AddDays(-3)})
	inv.Add(ctx, models.InventoryItem{Name: "Cheese", ExpiryDate: testToday().AddDays(3)})
	dash := NewDashboardService(inv, NewTelemetryService(&stubSource{}), fixedClock)

	sum, err := dash.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.ExpiringSoon)
}

func TestDashboard_TelemetryError(t *testing.T) {
	dash := NewDashboardService(newTestInventory(nil), NewTelemetryService(&stubSource{err: errors.New("x")}), fixedClock)
	_, err := dash.GetSummary(context.Background())
	assert.Error(t, err)
}
