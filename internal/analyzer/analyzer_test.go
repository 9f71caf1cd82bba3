package analyzer

import (
	"reflect"
	"testing"
	"time"

	"github.com/accountlens/accountlens/internal/models"
)

func testAccount() models.RawAccount {
	return models.RawAccount{
		ID:           123_456_789,
		Username:     "example",
		FirstName:    "Ex",
		LastName:     "Ample",
		LanguageCode: "en",
		Phone:        "+14155552671",
		IsPremium:    true,
		HasPhoto:     true,
		Bio:          "hello",
		CommonChats:  2,
		Presence:     models.Presence{Kind: models.PresenceExact, LastOnline: frozenNow.Add(-40 * time.Minute)},
	}
}

func TestAnalyze_AssemblesReport(t *testing.T) {
	a := NewWithClock(func() time.Time { return frozenNow })
	report := a.Analyze(testAccount())

	if err := report.Validate(); err != nil {
		t.Fatalf("report failed validation: %v", err)
	}
	if report.ID == "" {
		t.Error("report ID must be set")
	}
	// 123,456,789 < 200,000,000 → mid 2017 bucket
	if report.Registration.Year != 2017 || report.Registration.Month != 8 || report.Registration.Day != 1 {
		t.Errorf("Registration = %d-%02d-%02d, want 2017-08-01",
			report.Registration.Year, report.Registration.Month, report.Registration.Day)
	}
	// Language beats the phone prefix
	if report.Country.Label != "English Speaking Region" || report.Country.Source != models.SourceLanguage {
		t.Errorf("Country = {%q, %s}, want {English Speaking Region, language}", report.Country.Label, report.Country.Source)
	}
	if report.Status != "Last seen: 40 minute(s) ago" {
		t.Errorf("Status = %q, want \"Last seen: 40 minute(s) ago\"", report.Status)
	}
	if !report.AnalyzedAt.Equal(frozenNow) {
		t.Errorf("AnalyzedAt = %v, want %v", report.AnalyzedAt, frozenNow)
	}
}

func TestAnalyze_PassthroughFields(t *testing.T) {
	a := NewWithClock(func() time.Time { return frozenNow })
	account := testAccount()
	report := a.Analyze(account)

	if !reflect.DeepEqual(report.Account, account) {
		t.Errorf("passthrough account diverged:\ngot  %+v\nwant %+v", report.Account, account)
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	a := NewWithClock(func() time.Time { return frozenNow })
	account := testAccount()
	before := account

	_ = a.Analyze(account)

	if !reflect.DeepEqual(account, before) {
		t.Errorf("input mutated:\nbefore %+v\nafter  %+v", before, account)
	}
}

func TestAnalyze_DeterministicWithFrozenClock(t *testing.T) {
	a := NewWithClock(func() time.Time { return frozenNow })
	account := testAccount()

	first := a.Analyze(account)
	second := a.Analyze(account)

	// Report IDs are minted per analysis; everything else must be identical.
	first.ID = ""
	second.ID = ""
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports diverged under a frozen clock:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAnalyze_FailuresAreAttributeScoped(t *testing.T) {
	// An account with no usable country signal still gets a full report:
	// the country degrades to unknown without touching the other estimates.
	a := NewWithClock(func() time.Time { return frozenNow })
	report := a.Analyze(models.RawAccount{
		ID:       500,
		Presence: models.Presence{Kind: models.PresenceUnknown},
	})

	if report.Country.Source != models.SourceUnknown {
		t.Errorf("Country.Source = %s, want unknown", report.Country.Source)
	}
	if report.Registration.Accuracy != models.AccuracyApproximate {
		t.Errorf("Registration.Accuracy = %s, want approximate", report.Registration.Accuracy)
	}
	if report.Registration.Year != 2013 || report.Registration.Month != 8 || report.Registration.Day != 14 {
		t.Errorf("Registration = %d-%02d-%02d, want 2013-08-14",
			report.Registration.Year, report.Registration.Month, report.Registration.Day)
	}
	if report.Status != "Unknown" {
		t.Errorf("Status = %q, want \"Unknown\"", report.Status)
	}
}
