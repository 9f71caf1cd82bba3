// Package analyzer implements the account attribute inference engine.
//
// It turns the few privacy-limited signals Telegram exposes about an account
// into estimated human-meaningful attributes:
//
//   - an approximate registration date, from the numeric account ID against an
//     ordered table of known ID-growth milestones
//   - an approximate country/region, from the language tag (preferred) or the
//     phone calling code (longest prefix first)
//   - a categorized last-seen label, from the raw presence descriptor
//
// The engine is pure aside from reading the clock: it performs no I/O, never
// mutates its input, and degrades to per-attribute "unknown"/"failed" sentinels
// instead of returning errors. The reference tables are process-wide constants,
// so concurrent use needs no locking.
package analyzer

import (
	"time"

	"github.com/google/uuid"

	"github.com/accountlens/accountlens/internal/models"
)

// Analyzer aggregates the three estimators into analysis reports.
type Analyzer struct {
	now func() time.Time
}

// New creates an Analyzer using the wall clock.
func New() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewWithClock creates an Analyzer with an injected clock, for deterministic tests.
func NewWithClock(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Analyze produces one Report for the given account snapshot. The clock is
// read once; a failure in one estimator never affects the others, so the
// report is always fully constructed.
func (a *Analyzer) Analyze(account models.RawAccount) models.Report {
	now := a.now()
	return models.Report{
		ID:           uuid.New().String(),
		Account:      account,
		Registration: EstimateRegistration(account.ID),
		Country:      EstimateCountry(account.LanguageCode, account.Phone),
		Status:       ClassifyStatus(account.Presence, now),
		AnalyzedAt:   now.UTC(),
	}
}
