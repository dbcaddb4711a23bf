package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"smart_fridge/internal/expiry"
	"smart_fridge/internal/logger"
	"smart_fridge/internal/metrics"
	"smart_fridge/internal/models"
	"smart_fridge/internal/repository"
)

const defaultDetectedName = "Unknown"

var (
	// ErrVisionUnavailable wraps any failure to reach the vision model.
	ErrVisionUnavailable = errors.New("vision model unavailable")
	ErrEmptyImage        = errors.New("image is empty")
)

// DetectionParseError means the vision model answered with something that
// does not match the expected item array.
type DetectionParseError struct {
	Raw string
	Err error
}

func (e *DetectionParseError) Error() string {
	return "malformed detection response: " + e.Err.Error()
}

func (e *DetectionParseError) Unwrap() error { return e.Err }

func parseErrorf(raw, format string, args ...any) error {
	return &DetectionParseError{Raw: raw, Err: fmt.Errorf(format, args...)}
}

// fencedJSON matches a response wrapped in a markdown code block.
var fencedJSON = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// ParseDetections validates the model's text against the item schema:
// a JSON array of objects whose known fields, when present, have the right
// types. Missing fields are allowed and defaulted later. Empty text means
// nothing was detected.
func ParseDetections(raw string) ([]models.DetectedItem, error) {
	text := strings.TrimSpace(raw)
	if m := fencedJSON.FindStringSubmatch(text); len(m) > 1 {
		text = m[1]
	}
	if text == "" {
		return nil, nil
	}
	if !strings.HasPrefix(text, "[") {
		return nil, parseErrorf(raw, "expected a JSON array")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return nil, &DetectionParseError{Raw: raw, Err: err}
	}

	out := make([]models.DetectedItem, 0, len(elems))
	for i, elem := range elems {
		item, err := decodeDetected(elem)
		if err != nil {
			return nil, parseErrorf(raw, "item %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func decodeDetected(elem json.RawMessage) (models.DetectedItem, error) {
	var d models.DetectedItem
	if !bytes.HasPrefix(bytes.TrimSpace(elem), []byte("{")) {
		return d, errors.New("not an object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil {
		return d, err
	}

	var err error
	if d.Name, err = optionalString(fields, "name"); err != nil {
		return d, err
	}
	if d.Unit, err = optionalString(fields, "unit"); err != nil {
		return d, err
	}
	if d.Category, err = optionalString(fields, "category"); err != nil {
		return d, err
	}
	if d.Quantity, err = optionalNumber(fields, "quantity"); err != nil {
		return d, err
	}
	days, err := optionalNumber(fields, "estimatedExpiryDays")
	if err != nil {
		return d, err
	}
	if days != nil {
		if *days != math.Trunc(*days) || math.Abs(*days) > math.MaxInt32 {
			return d, fmt.Errorf("estimatedExpiryDays must be an integer, got %v", *days)
		}
		n := int(*days)
		d.EstimatedExpiryDays = &n
	}
	return d, nil
}

func isAbsent(raw json.RawMessage, ok bool) bool {
	return !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func optionalString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if isAbsent(raw, ok) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func optionalNumber(fields map[string]json.RawMessage, key string) (*float64, error) {
	raw, ok := fields[key]
	if isAbsent(raw, ok) {
		return nil, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}

// NormalizeDetected turns a detection into a full item (without an id).
func NormalizeDetected(d models.DetectedItem, today models.Date) models.InventoryItem {
	item := models.InventoryItem{
		Name:     strings.TrimSpace(d.Name),
		Quantity: defaultQuantity,
		Unit:     strings.TrimSpace(d.Unit),
		Category: models.ParseCategory(d.Category),
	}
	if item.Name == "" {
		item.Name = defaultDetectedName
	}
	if d.Quantity != nil && *d.Quantity > 0 {
		item.Quantity = *d.Quantity
	}
	if item.Unit == "" {
		item.Unit = defaultUnit
	}

	shelfLife := expiry.FallbackDays
	if d.EstimatedExpiryDays != nil && *d.EstimatedExpiryDays > 0 {
		shelfLife = *d.EstimatedExpiryDays
	}
	item.ExpiryDate = today.AddDays(shelfLife)
	return item
}

// ScanService runs one image through the vision model into the inventory.
type ScanService struct {
	vision    VisionModel
	inventory Inventory
	events    activityWriter
	metrics   *metrics.Metrics
	guard     busyGuard
}

func NewScanService(vision VisionModel, inventory Inventory, eventRepo repository.EventRepo, m *metrics.Metrics, clock Clock) *ScanService {
	return &ScanService{vision: vision, inventory: inventory, events: newActivityWriter(eventRepo, clock), metrics: m}
}

func (s *ScanService) WithLogger(l *logger.Logger) *ScanService {
	if l != nil {
		s.events.log = l
	}
	return s
}

// Busy reports whether a scan is in flight.
func (s *ScanService) Busy() bool { return s.guard.busy() }

// Scan detects items on the image and merges them. On any failure the
// inventory is left untouched. A second call while one runs gets ErrBusy.
func (s *ScanService) Scan(ctx context.Context, image []byte, mimeType string) (int, error) {
	if !s.guard.tryAcquire() {
		s.metrics.ObserveScan(metrics.ResultBusy, 0)
		return 0, ErrBusy
	}
	defer s.guard.release()

	if len(image) == 0 {
		return 0, ErrEmptyImage
	}
	if s.vision == nil {
		return 0, s.fail(ctx, ErrVisionUnavailable)
	}

	raw, err := s.vision.DetectItems(ctx, image, mimeType)
	if err != nil {
		return 0, s.fail(ctx, fmt.Errorf("%w: %w", ErrVisionUnavailable, err))
	}

	detected, err := ParseDetections(raw)
	if err != nil {
		return 0, s.fail(ctx, err)
	}

	n := s.inventory.MergeDetected(ctx, detected)
	s.metrics.ObserveScan(metrics.ResultOK, n)
	return n, nil
}

func (s *ScanService) fail(ctx context.Context, err error) error {
	s.metrics.ObserveScan(metrics.ResultFailed, 0)
	s.events.append(ctx, models.EventScanFailed, "Failed to analyze image", map[string]any{"error": err.Error()})
	return err
}
