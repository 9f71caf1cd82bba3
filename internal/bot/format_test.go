package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/accountlens/accountlens/internal/models"
	"github.com/accountlens/accountlens/internal/storage"
)

func TestEscapeMarkdownV2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a.b", "a\\.b"},
		{"(from phone)", "\\(from phone\\)"},
		{"_*[]()~`>#+-=|{}.!", "\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := escapeMarkdownV2(tt.in); got != tt.want {
			t.Errorf("escapeMarkdownV2(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatReport(t *testing.T) {
	report := models.Report{
		ID: "report-1",
		Account: models.RawAccount{
			ID:           123456789,
			Username:     "example",
			FirstName:    "Ex",
			LastName:     "Ample",
			LanguageCode: "en",
			IsPremium:    true,
			HasPhoto:     true,
			Bio:          "hello",
			Presence:     models.Presence{Kind: models.PresenceUnknown},
		},
		Registration: models.RegistrationEstimate{Year: 2017, Month: 8, Day: 1, Estimated: true, Accuracy: models.AccuracyApproximate},
		Country:      models.CountryEstimate{Label: "English Speaking Region", Source: models.SourceLanguage},
		Status:       "Unknown",
		AnalyzedAt:   time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC),
	}

	got := formatReport(report)

	for _, want := range []string{
		"123456789",
		"Ex Ample",
		"example",
		"English Speaking Region \\(from language\\)",
		"2017\\-08\\-01 \\(Estimated\\)",
		"Premium:* Yes",
		"Is Bot:* No",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted report missing %q:\n%s", want, got)
		}
	}
}

func TestFormatReport_UnknownCountryShowsPrivacyNote(t *testing.T) {
	report := models.Report{
		Account:      models.RawAccount{ID: 1, Presence: models.Presence{Kind: models.PresenceUnknown}},
		Registration: models.RegistrationEstimate{Estimated: true, Accuracy: models.AccuracyFailed},
		Country:      models.CountryEstimate{Label: "Unknown", Source: models.SourceUnknown},
		Status:       "Unknown",
		AnalyzedAt:   time.Now(),
	}

	got := formatReport(report)
	if !strings.Contains(got, "Unknown \\(Privacy Protected\\)") {
		t.Errorf("unknown country should render the privacy note:\n%s", got)
	}
	// Failed registration must not render as a date
	if !strings.Contains(got, "Registration:* Unknown") {
		t.Errorf("failed registration should render as Unknown:\n%s", got)
	}
}

func TestFormatCountry(t *testing.T) {
	tests := []struct {
		estimate models.CountryEstimate
		want     string
	}{
		{models.CountryEstimate{Label: "Japan", Source: models.SourceLanguage}, "Japan (from language)"},
		{models.CountryEstimate{Label: "Jordan", Source: models.SourcePhone}, "Jordan (from phone)"},
		{models.CountryEstimate{Label: "Unknown", Source: models.SourceUnknown}, "Unknown (Privacy Protected)"},
	}
	for _, tt := range tests {
		if got := formatCountry(tt.estimate); got != tt.want {
			t.Errorf("formatCountry(%+v) = %q, want %q", tt.estimate, got, tt.want)
		}
	}
}

func TestFormatStats(t *testing.T) {
	stats := storage.Stats{
		StartedAt:     time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		TotalAnalyses: 42,
		Commands:      map[string]int64{"analyze": 30, "help": 5},
	}

	got := formatStats(stats)
	for _, want := range []string{"42", "/analyze: 30", "/help: 5"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted stats missing %q:\n%s", want, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := truncate(long, 100)
	if len(got) != 103 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate did not cap at 100 + ellipsis, got len %d", len(got))
	}
	if truncate("short", 100) != "short" {
		t.Error("short strings must pass through unchanged")
	}
}

func TestFormatRetryAfter(t *testing.T) {
	if got := formatRetryAfter(30 * time.Second); !strings.Contains(got, "30 seconds") {
		t.Errorf("formatRetryAfter(30s) = %q", got)
	}
	if got := formatRetryAfter(0); !strings.Contains(got, "1 seconds") {
		t.Errorf("formatRetryAfter(0) should floor to 1 second, got %q", got)
	}
}
