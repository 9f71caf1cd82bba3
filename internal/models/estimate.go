package models

import (
	"errors"
	"fmt"
	"time"
)

// Accuracy marks whether a registration estimate is usable.
type Accuracy string

const (
	// AccuracyApproximate is normal heuristic output.
	AccuracyApproximate Accuracy = "approximate"
	// AccuracyFailed means no usable estimate could be produced; the date
	// fields are sentinels and must not be displayed as a date.
	AccuracyFailed Accuracy = "failed"
)

// RegistrationEstimate is an approximate account creation date derived from
// the numeric account identifier.
type RegistrationEstimate struct {
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	Day       int      `json:"day"`
	Estimated bool     `json:"estimated"`
	Accuracy  Accuracy `json:"accuracy"`
}

// Date returns the estimate as a UTC date. Only meaningful when Accuracy
// is AccuracyApproximate.
func (r RegistrationEstimate) Date() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the estimate for display.
func (r RegistrationEstimate) String() string {
	if r.Accuracy == AccuracyFailed {
		return "Unknown"
	}
	return fmt.Sprintf("%04d-%02d-%02d (Estimated)", r.Year, r.Month, r.Day)
}

// Validate checks that the estimate fields are consistent.
func (r *RegistrationEstimate) Validate() error {
	switch r.Accuracy {
	case AccuracyApproximate:
		if r.Year < 2013 {
			return errors.New("approximate estimate year must not precede the platform launch")
		}
		if r.Month < 1 || r.Month > 12 {
			return errors.New("month must be between 1 and 12")
		}
		if r.Day < 1 || r.Day > 31 {
			return errors.New("day must be between 1 and 31")
		}
	case AccuracyFailed:
		// Sentinel fields carry no constraints.
	default:
		return errors.New("accuracy must be 'approximate' or 'failed'")
	}
	return nil
}

// CountrySource identifies which signal produced a country estimate.
type CountrySource string

const (
	// SourceLanguage means the language tag matched the language→region table.
	SourceLanguage CountrySource = "language"
	// SourcePhone means a calling-code prefix of the phone number matched.
	SourcePhone CountrySource = "phone"
	// SourceUnknown means neither signal yielded a match.
	SourceUnknown CountrySource = "unknown"
)

// CountryEstimate is an approximate country or region label with its provenance.
type CountryEstimate struct {
	Label  string        `json:"label"`
	Source CountrySource `json:"source"`
}

// Validate checks that the estimate fields are consistent.
func (c *CountryEstimate) Validate() error {
	if c.Label == "" {
		return errors.New("country label must not be empty")
	}
	switch c.Source {
	case SourceLanguage, SourcePhone, SourceUnknown:
		return nil
	default:
		return errors.New("country source must be 'language', 'phone', or 'unknown'")
	}
}
