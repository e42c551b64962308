package services

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	normalMinRate = -0.02
	normalMaxRate = 0.03

	extremeMinRate = -0.08
	extremeMaxRate = 0.12

	extremeEventProbability = 0.05

	rateScale = 5
)

// RandomSource yields uniform floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewSeededRandomSource returns a deterministic PCG source. A zero seed
// draws one from the current time.
func NewSeededRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MarketSimulator draws daily investment rates: most days move within a
// narrow band, and with a small probability an extreme day happens.
type MarketSimulator struct {
	mu  sync.Mutex
	src RandomSource
}

// NewMarketSimulator wraps src, which does not need to be safe for concurrent use.
func NewMarketSimulator(src RandomSource) *MarketSimulator {
	return &MarketSimulator{src: src}
}

// GenerateDailyRate returns a rate in [-0.02, 0.03], or in [-0.08, 0.12]
// on an extreme day, rounded to five decimal places.
func (m *MarketSimulator) GenerateDailyRate() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	minRate, maxRate := normalMinRate, normalMaxRate
	if m.src.Float64() < extremeEventProbability {
		minRate, maxRate = extremeMinRate, extremeMaxRate
	}
	rate := minRate + (maxRate-minRate)*m.src.Float64()

	return decimal.NewFromFloat(rate).Round(rateScale)
}
