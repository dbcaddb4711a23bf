package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"smart_fridge/internal/models"
)

// ----------- Simulation ranges -----------
const (
	FridgeTempMinC  = 3.0
	FridgeTempMaxC  = 4.0
	FreezerTempMinC = -18.0
	FreezerTempMaxC = -16.0
	HumidityMinPct  = 40.0
	HumidityMaxPct  = 45.0
	PowerMinW       = 100.0
	PowerMaxW       = 140.0

	DefaultSampleCount = 24
)

// SimulatorSource draws every reading independently and uniformly from its
// range. It stands in for a real sensor feed.
type SimulatorSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatorSource returns a source producing one day of hourly samples
// per series.
func NewSimulatorSource(seed uint64) *SimulatorSource {
	return &SimulatorSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate builds a fresh series of DefaultSampleCount samples labelled
// "0:00" through "23:00".
func (s *SimulatorSource) Generate(ctx context.Context) ([]models.SensorSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SensorSample, 0, DefaultSampleCount)
	for i := 0; i < DefaultSampleCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, models.SensorSample{
			Time:         fmt.Sprintf("%d:00", i),
			FridgeTempC:  s.uniform(FridgeTempMinC, FridgeTempMaxC),
			FreezerTempC: s.uniform(FreezerTempMinC, FreezerTempMaxC),
			HumidityPct:  s.uniform(HumidityMinPct, HumidityMaxPct),
			PowerW:       s.uniform(PowerMinW, PowerMaxW),
		})
	}
	return out, nil
}

// uniform returns a value in [lo, hi] rounded to two decimals.
func (s *SimulatorSource) uniform(lo, hi float64) float64 {
	v := lo + s.rng.Float64()*(hi-lo)
	return math.Min(hi, math.Max(lo, round2(v)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
