package fetcher

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantKind       Kind
		wantRetryAfter time.Duration
	}{
		{
			name: "rate limited",
			err: &tgbotapi.Error{
				Code:    429,
				Message: "Too Many Requests: retry after 30",
				ResponseParameters: tgbotapi.ResponseParameters{
					RetryAfter: 30,
				},
			},
			wantKind:       KindRateLimited,
			wantRetryAfter: 30 * time.Second,
		},
		{
			name:     "privacy restricted",
			err:      &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"},
			wantKind: KindPrivacyRestricted,
		},
		{
			name:     "chat not found",
			err:      &tgbotapi.Error{Code: 400, Message: "Bad Request: chat not found"},
			wantKind: KindNotFound,
		},
		{
			name:     "other bad request is transient",
			err:      &tgbotapi.Error{Code: 400, Message: "Bad Request: message is too long"},
			wantKind: KindTransient,
		},
		{
			name:     "plain network error is transient",
			err:      errors.New("dial tcp: i/o timeout"),
			wantKind: KindTransient,
		},
		{
			name:     "wrapped API error is still classified",
			err:      fmt.Errorf("getChat 42: %w", &tgbotapi.Error{Code: 403, Message: "Forbidden"}),
			wantKind: KindPrivacyRestricted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if got.Kind != tt.wantKind {
				t.Errorf("classify() kind = %s, want %s", got.Kind, tt.wantKind)
			}
			if got.RetryAfter != tt.wantRetryAfter {
				t.Errorf("classify() retry after = %v, want %v", got.RetryAfter, tt.wantRetryAfter)
			}
			if !errors.Is(got, tt.err) && got.Err != tt.err {
				t.Error("classified error must wrap the original")
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindRateLimited, RetryAfter: 30 * time.Second, Err: errors.New("boom")}
	msg := err.Error()
	if msg == "" || err.Unwrap() == nil {
		t.Fatalf("unexpected error shape: %q", msg)
	}
}
