// Package models defines the core domain entities for the accountlens application.
// These models represent raw account snapshots retrieved from Telegram, the per-attribute
// estimates produced by the analyzer, and the assembled analysis report.
// All models include built-in validation to ensure data integrity throughout the application.
//
// Terminology:
//   - RawAccount: the privacy-limited signals Telegram exposes about an account,
//     exactly as fetched. The analyzer never mutates it.
//   - Report: one immutable analysis result derived from a RawAccount.
package models

import (
	"errors"
)

// RawAccount is a point-in-time snapshot of the raw signals available for an account.
// Only ID, LanguageCode, Phone, and Presence feed the analyzer's estimators; every
// other field is passed through to the Report unchanged.
type RawAccount struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username,omitempty"`
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
	LanguageCode string   `json:"language_code,omitempty"` // two-letter tag, may be empty
	Phone        string   `json:"phone,omitempty"`         // arbitrary formatting, may be empty
	IsBot        bool     `json:"is_bot"`
	IsVerified   bool     `json:"is_verified"`
	IsPremium    bool     `json:"is_premium"`
	IsFake       bool     `json:"is_fake"`
	IsScam       bool     `json:"is_scam"`
	IsDeleted    bool     `json:"is_deleted"`
	HasPhoto     bool     `json:"has_photo"`
	Bio          string   `json:"bio,omitempty"`
	CommonChats  int      `json:"common_chats"`
	Presence     Presence `json:"presence"`
}

// Validate checks that all account fields are valid.
func (a *RawAccount) Validate() error {
	if a.ID <= 0 {
		return errors.New("account ID must be positive")
	}
	if a.CommonChats < 0 {
		return errors.New("common chats count must not be negative")
	}
	if err := a.Presence.Validate(); err != nil {
		return err
	}
	return nil
}
