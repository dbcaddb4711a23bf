package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"smart_fridge/internal/logger"
	"smart_fridge/internal/models"
	"smart_fridge/internal/repository"

	"github.com/google/uuid"
)

// activityWriter appends events on behalf of a service. A failed append is
// logged and never reaches the caller.
type activityWriter struct {
	repo  repository.EventRepo
	log   *logger.Logger
	clock Clock
}

func newActivityWriter(repo repository.EventRepo, clock Clock) activityWriter {
	if clock == nil {
		clock = time.Now
	}
	return activityWriter{repo: repo, log: logger.Nop(), clock: clock}
}

func (w activityWriter) append(ctx context.Context, typ, desc string, meta map[string]any) {
	if w.repo == nil {
		return
	}
	ev := models.FridgeEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  w.clock().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	}
	if err := w.repo.Append(ctx, ev); err != nil {
		w.log.Warnw("event_append_failed", "event_id", ev.EventID, "type", typ, "err", err)
	}
}

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	errNoEventRepo      = errors.New("activity log is not configured")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	return from, to, normalizeEventType(f.Type), nil
}

// IsInvalidFilter reports whether err came from a bad log filter.
func IsInvalidFilter(err error) bool {
	return errors.Is(err, errInvalidTimeRange)
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.FridgeEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	if s.eventRepo == nil {
		return nil, errNoEventRepo
	}
	return s.eventRepo.List(ctx, from, to, typ)
}
