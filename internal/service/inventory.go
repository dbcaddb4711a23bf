package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"smart_fridge/internal/expiry"
	"smart_fridge/internal/logger"
	"smart_fridge/internal/metrics"
	"smart_fridge/internal/models"
	"smart_fridge/internal/repository"

	"github.com/google/uuid"
)

// Defaults for a manually added item with blank fields.
const (
	defaultManualName = "New Item"
	defaultUnit       = "pcs"
	defaultQuantity   = 1
)

// InventoryEntry is an item as shown to the user, with the values derived
// from its expiry date at read time.
type InventoryEntry struct {
	models.InventoryItem
	DaysRemaining int             `json:"days_remaining"`
	Severity      expiry.Severity `json:"severity"`
	Status        string          `json:"status"`
}

// InventoryService owns the live item collection of the process.
type InventoryService struct {
	mu    sync.RWMutex
	items []models.InventoryItem

	events  activityWriter
	metrics *metrics.Metrics
	clock   Clock
	newID   func() string
}

func NewInventoryService(eventRepo repository.EventRepo, m *metrics.Metrics, clock Clock) *InventoryService {
	if clock == nil {
		clock = time.Now
	}
	return &InventoryService{
		events:  newActivityWriter(eventRepo, clock),
		metrics: m,
		clock:   clock,
		newID:   uuid.NewString,
	}
}

// WithLogger sets where failed activity-log writes are reported.
func (s *InventoryService) WithLogger(l *logger.Logger) *InventoryService {
	if l != nil {
		s.events.log = l
	}
	return s
}

func (s *InventoryService) today() models.Date {
	return models.DateOf(s.clock())
}

// Seed replaces the collection without logging, used once at startup.
func (s *InventoryService) Seed(items []models.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.ID == "" {
			it.ID = s.newID()
		}
		s.items = append(s.items, it)
	}
	s.metrics.SetInventorySize(len(s.items))
}

// Add appends one item. Blank fields are completed (fresh id, "New Item",
// 1 pcs, Other, expiry in FallbackDays); it never fails.
func (s *InventoryService) Add(ctx context.Context, item models.InventoryItem) models.InventoryItem {
	item = s.complete(item)

	s.mu.Lock()
	s.items = append(s.items, item)
	size := len(s.items)
	s.mu.Unlock()

	s.metrics.SetInventorySize(size)
	s.events.append(ctx, models.EventItemAdded, "Added "+item.Name, map[string]any{
		"id":          item.ID,
		"name":        item.Name,
		"category":    item.Category,
		"expiry_date": item.ExpiryDate.String(),
	})
	return item
}

func (s *InventoryService) complete(item models.InventoryItem) models.InventoryItem {
	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.Name = strings.TrimSpace(item.Name); item.Name == "" {
		item.Name = defaultManualName
	}
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	if item.Unit = strings.TrimSpace(item.Unit); item.Unit == "" {
		item.Unit = defaultUnit
	}
	if !item.Category.Valid() {
		item.Category = models.ParseCategory(string(item.Category))
	}
	if item.ExpiryDate.IsZero() {
		item.ExpiryDate = s.today().AddDays(expiry.FallbackDays)
	}
	return item
}

// Remove deletes the item with the given id. Unknown ids are a no-op; the
// return value only tells whether anything was deleted.
func (s *InventoryService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := -1
	for i, it := range s.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	size := len(s.items)
	s.mu.Unlock()

	s.metrics.SetInventorySize(size)
	s.events.append(ctx, models.EventItemRemoved, "Removed "+removed.Name, map[string]any{
		"id":   removed.ID,
		"name": removed.Name,
	})
	return true
}

// MergeDetected normalizes the detections and puts the batch in front of
// the existing items, keeping the batch's own order. Returns the count.
func (s *InventoryService) MergeDetected(ctx context.Context, detected []models.DetectedItem) int {
	if len(detected) == 0 {
		return 0
	}

	today := s.today()
	batch := make([]models.InventoryItem, 0, len(detected))
	names := make([]string, 0, len(detected))
	for _, d := range detected {
		item := NormalizeDetected(d, today)
		item.ID = s.newID()
		batch = append(batch, item)
		names = append(names, item.Name)
	}

	s.mu.Lock()
	merged := make([]models.InventoryItem, 0, len(batch)+len(s.items))
	merged = append(merged, batch...)
	merged = append(merged, s.items...)
	s.items = merged
	size := len(s.items)
	s.mu.Unlock()

	s.metrics.SetInventorySize(size)
	s.events.append(ctx, models.EventScanMerged, fmt.Sprintf("Added %d items from scan", len(batch)), map[string]any{
		"count": len(batch),
		"names": names,
	})
	return len(batch)
}

// List returns the items in display order with derived expiry values.
func (s *InventoryService) List(ctx context.Context) []InventoryEntry {
	today := s.today()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]InventoryEntry, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, newEntry(it, today))
	}
	return out
}

// Snapshot returns a copy of the raw items.
func (s *InventoryService) Snapshot(ctx context.Context) []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

func newEntry(it models.InventoryItem, today models.Date) InventoryEntry {
	days := expiry.DaysRemaining(it.ExpiryDate, today)
	return InventoryEntry{
		InventoryItem: it,
		DaysRemaining: days,
		Severity:      expiry.Classify(days),
		Status:        expiry.StatusLabel(days),
	}
}


// DemoItems is the starter inventory shown on a fresh dashboard.
func DemoItems(today models.Date) []models.InventoryItem {
	return []models.InventoryItem{
		{Name: "Milk", Quantity: 1, Unit: "carton", Category: models.CategoryDairy, ExpiryDate: today.AddDays(2)},
		{Name: "Eggs", Quantity: 12, Unit: "pcs", Category: models.CategoryDairy, ExpiryDate: today.AddDays(7)},
		{Name: "Spinach", Quantity: 1, Unit: "bag", Category: models.CategoryProduce, ExpiryDate: today.AddDays(1)},
		{Name: "Chicken Breast", Quantity: 500, Unit: "g", Category: models.CategoryMeat, ExpiryDate: today.AddDays(3)},
	}
}
