package service

import (
	"context"
	"errors"
	"sync"

	"smart_fridge/internal/models"
)

var errNoTelemetrySource = errors.New("no telemetry source configured")

// TelemetryService holds the series of the current session. The series is
// produced once on first use and replaced only by a new session.
type TelemetryService struct {
	source TelemetrySource

	mu     sync.Mutex
	loaded bool
	series []models.SensorSample
}

func NewTelemetryService(source TelemetrySource) *TelemetryService {
	return &TelemetryService{source: source}
}

// Series returns a copy of the session series. A failed generation is
// retried on the next call.
func (s *TelemetryService) Series(ctx context.Context) ([]models.SensorSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if s.source == nil {
			return nil, errNoTelemetrySource
		}
		series, err := s.source.Generate(ctx)
		if err != nil {
			return nil, err
		}
		s.series = series
		s.loaded = true
	}

	out := make([]models.SensorSample, len(s.series))
	copy(out, s.series)
	return out, nil
}
