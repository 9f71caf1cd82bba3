package fetcher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Kind classifies a fetch failure. The analyzer never sees these; they are
// resolved before any attributes reach it.
type Kind string

const (
	// KindNotFound means the requested account does not exist or is not reachable.
	KindNotFound Kind = "not_found"
	// KindPrivacyRestricted means the account's privacy settings block access.
	KindPrivacyRestricted Kind = "privacy_restricted"
	// KindRateLimited means Telegram asked us to back off; RetryAfter carries the wait.
	KindRateLimited Kind = "rate_limited"
	// KindTransient covers network failures and server errors worth retrying later.
	KindTransient Kind = "transient"
)

// Error is a classified fetch failure.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration // set for KindRateLimited
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindRateLimited {
		return fmt.Sprintf("fetch failed (%s, retry after %v): %v", e.Kind, e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("fetch failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify wraps a Bot API error into a kinded Error.
func classify(err error) *Error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return &Error{
				Kind:       KindRateLimited,
				RetryAfter: time.Duration(apiErr.RetryAfter) * time.Second,
				Err:        err,
			}
		case apiErr.Code == 403:
			return &Error{Kind: KindPrivacyRestricted, Err: err}
		case apiErr.Code == 400 && strings.Contains(strings.ToLower(apiErr.Message), "not found"):
			return &Error{Kind: KindNotFound, Err: err}
		}
	}
	return &Error{Kind: KindTransient, Err: err}
}
