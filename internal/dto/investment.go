package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// AdvanceDayResponse reports the simulated day after advancing and the sweep it ran.
type AdvanceDayResponse struct {
	Today time.Time          `json:"today"`
	Sweep domain.SweepResult `json:"sweep"`
}
