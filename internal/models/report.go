package models

import (
	"errors"
	"time"
)

// Report is one immutable analysis result for an account. It carries the
// passthrough fields of the RawAccount it was derived from, the three
// per-attribute estimates, and the wall-clock time of the analysis.
// Reports are never cached or persisted; each request recomputes.
type Report struct {
	ID           string               `json:"id"`
	Account      RawAccount           `json:"account"`
	Registration RegistrationEstimate `json:"registration"`
	Country      CountryEstimate      `json:"country"`
	Status       string               `json:"status"` // human last-seen label
	AnalyzedAt   time.Time            `json:"analyzed_at"`
}

// Validate checks that all report fields are valid.
func (r *Report) Validate() error {
	if r.ID == "" {
		return errors.New("report ID must not be empty")
	}
	if err := r.Account.Validate(); err != nil {
		return err
	}
	if err := r.Registration.Validate(); err != nil {
		return err
	}
	if err := r.Country.Validate(); err != nil {
		return err
	}
	if r.Status == "" {
		return errors.New("status label must not be empty")
	}
	if r.AnalyzedAt.IsZero() {
		return errors.New("analyzed at must be set")
	}
	return nil
}
