package models

import (
	"errors"
	"time"
)

// PresenceKind identifies which form a raw last-seen signal takes.
type PresenceKind string

const (
	// PresenceUnknown means the source exposed no last-seen signal at all.
	PresenceUnknown PresenceKind = "unknown"
	// PresenceExact means LastOnline carries a concrete timestamp.
	PresenceExact PresenceKind = "exact"
	// PresenceOnline means the account was online at fetch time.
	PresenceOnline PresenceKind = "online"
	// PresenceRecently means "last seen recently" without a timestamp.
	PresenceRecently PresenceKind = "recently"
	// PresenceLastWeek means last seen within the past week.
	PresenceLastWeek PresenceKind = "last_week"
	// PresenceLastMonth means last seen within the past month.
	PresenceLastMonth PresenceKind = "last_month"
	// PresenceLongAgo means last seen a long time ago.
	PresenceLongAgo PresenceKind = "long_ago"
)

// Presence is the raw last-seen descriptor for an account: either an exact
// timestamp, one of the coarse visibility categories, or unknown.
type Presence struct {
	Kind       PresenceKind `json:"kind"`
	LastOnline time.Time    `json:"last_online,omitempty"` // set only when Kind == PresenceExact
}

// Validate checks that the presence descriptor is well-formed.
func (p *Presence) Validate() error {
	switch p.Kind {
	case PresenceUnknown, PresenceOnline, PresenceRecently, PresenceLastWeek, PresenceLastMonth, PresenceLongAgo:
		if !p.LastOnline.IsZero() {
			return errors.New("last online must only be set for exact presence")
		}
	case PresenceExact:
		if p.LastOnline.IsZero() {
			return errors.New("exact presence requires a last online timestamp")
		}
		if p.LastOnline.After(time.Now()) {
			return errors.New("last online must not be in the future")
		}
	case "":
		return errors.New("presence kind must not be empty")
	default:
		return errors.New("unrecognized presence kind")
	}
	return nil
}
