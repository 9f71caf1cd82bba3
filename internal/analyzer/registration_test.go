package analyzer

import (
	"testing"

	"github.com/accountlens/accountlens/internal/models"
)

func TestEstimateRegistration_Buckets(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		wantYear  int
		wantMonth int
		wantDay   int
	}{
		{"smallest bucket", 500, 2013, 8, 14},
		{"zero ID maps to earliest bucket", 0, 2013, 8, 14},
		{"beta expansion", 5_000, 2013, 9, 15},
		{"public beta", 50_000, 2013, 11, 1},
		{"mid 2015", 2_000_000, 2015, 6, 1},
		{"early 2020", 900_000_000, 2020, 3, 1},
		{"early 2024 bucket", 2_500_000_000, 2024, 1, 1},
		{"beyond every milestone", 3_000_000_000, 2024, 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRegistration(tt.accountID)
			if got.Accuracy != models.AccuracyApproximate {
				t.Fatalf("Accuracy = %s, want approximate", got.Accuracy)
			}
			if !got.Estimated {
				t.Error("Estimated = false, want true")
			}
			if got.Year != tt.wantYear || got.Month != tt.wantMonth || got.Day != tt.wantDay {
				t.Errorf("EstimateRegistration(%d) = %d-%02d-%02d, want %d-%02d-%02d",
					tt.accountID, got.Year, got.Month, got.Day, tt.wantYear, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestEstimateRegistration_BoundaryIsStrict(t *testing.T) {
	// An ID exactly equal to a calibration bound belongs to the next bucket.
	below := EstimateRegistration(999)
	at := EstimateRegistration(1_000)

	if below.Year != 2013 || below.Month != 8 || below.Day != 14 {
		t.Errorf("EstimateRegistration(999) = %d-%02d-%02d, want 2013-08-14", below.Year, below.Month, below.Day)
	}
	if at.Year != 2013 || at.Month != 9 || at.Day != 15 {
		t.Errorf("EstimateRegistration(1000) = %d-%02d-%02d, want 2013-09-15", at.Year, at.Month, at.Day)
	}
}

func TestEstimateRegistration_Monotonic(t *testing.T) {
	// Dates must be non-decreasing as IDs grow, including across every
	// calibration bound and into the catch-all.
	ids := []int64{0, 500, 999, 1_000, 9_999, 10_000, 99_999, 100_000,
		1_000_000, 10_000_000, 50_000_000, 100_000_000, 200_000_000,
		400_000_000, 600_000_000, 800_000_000, 1_000_000_000, 1_200_000_000,
		1_400_000_000, 1_600_000_000, 1_800_000_000, 2_000_000_000,
		2_200_000_000, 2_400_000_000, 2_600_000_000, 3_000_000_000}

	prev := EstimateRegistration(ids[0]).Date()
	for _, id := range ids[1:] {
		cur := EstimateRegistration(id).Date()
		if cur.Before(prev) {
			t.Errorf("date decreased at ID %d: %v < %v", id, cur, prev)
		}
		prev = cur
	}
}

func TestEstimateRegistration_FailedSentinel(t *testing.T) {
	got := EstimateRegistration(-1)
	if got.Accuracy != models.AccuracyFailed {
		t.Fatalf("Accuracy = %s, want failed", got.Accuracy)
	}
	if got.Year != 0 || got.Month != 0 || got.Day != 0 {
		t.Errorf("failed estimate should carry zeroed date fields, got %d-%d-%d", got.Year, got.Month, got.Day)
	}
	if got.String() != "Unknown" {
		t.Errorf("failed estimate String() = %q, want \"Unknown\"", got.String())
	}
}

func TestEstimateRegistration_Deterministic(t *testing.T) {
	a := EstimateRegistration(123_456_789)
	b := EstimateRegistration(123_456_789)
	if a != b {
		t.Errorf("estimates differ for identical input: %+v vs %+v", a, b)
	}
}

func TestMilestoneTableOrdering(t *testing.T) {
	// The estimator's ascending scan relies on strictly ascending bounds
	// with non-decreasing dates.
	for i := 1; i < len(idMilestones); i++ {
		prev, cur := idMilestones[i-1], idMilestones[i]
		if cur.UpperBound <= prev.UpperBound {
			t.Errorf("bounds not strictly ascending at index %d: %d <= %d", i, cur.UpperBound, prev.UpperBound)
		}
		prevDate := EstimateRegistration(prev.UpperBound - 1).Date()
		curDate := EstimateRegistration(cur.UpperBound - 1).Date()
		if curDate.Before(prevDate) {
			t.Errorf("milestone dates not non-decreasing at index %d", i)
		}
	}
}
