package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
)

// Clock is the simulated calendar investment accounts compound against.
type Clock interface {
	Today() time.Time
	AdvanceOneDay() time.Time
}

// SimulatedClock is a Clock that only moves when told to. Safe for concurrent use.
type SimulatedClock struct {
	mu    sync.RWMutex
	today time.Time
}

// NewSimulatedClock starts the calendar on the day containing start.
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{today: domain.DateOf(start)}
}

// RestoreSimulatedClock resumes the calendar of a persistent store: it starts
// on start or on the latest day an investment account was compounded,
// whichever is later, so one market day applies to every account.
func RestoreSimulatedClock(ctx context.Context, accounts portsrepo.AccountReader, start time.Time) (*SimulatedClock, error) {
	latest, err := accounts.LatestInvestmentUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore simulated clock: %w", err)
	}
	if latest.After(start) {
		start = latest
	}
	return NewSimulatedClock(start), nil
}

var _ Clock = (*SimulatedClock)(nil)

func (c *SimulatedClock) Today() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.today
}

// AdvanceOneDay moves the calendar forward and returns the new day.
func (c *SimulatedClock) AdvanceOneDay() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = c.today.AddDate(0, 0, 1)
	return c.today
}
