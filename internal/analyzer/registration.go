package analyzer

import (
	"github.com/accountlens/accountlens/internal/models"
)

// EstimateRegistration maps a numeric account identifier to an approximate
// creation date using the milestone calibration table. The scan is ascending
// and the bound comparison is strict, so an ID exactly equal to a bound falls
// into the next bucket. IDs beyond every milestone get the catch-all newest
// date ("at least this recent"). IDs smaller than the smallest bound map to
// the earliest bucket; no lower-bound validation is performed.
//
// A malformed (negative) identifier yields Accuracy=failed with zeroed date
// fields. Callers must treat failed as "no usable estimate".
func EstimateRegistration(accountID int64) models.RegistrationEstimate {
	if accountID < 0 {
		return models.RegistrationEstimate{Estimated: true, Accuracy: models.AccuracyFailed}
	}

	for _, m := range idMilestones {
		if accountID < m.UpperBound {
			return models.RegistrationEstimate{
				Year:      m.Year,
				Month:     int(m.Month),
				Day:       m.Day,
				Estimated: true,
				Accuracy:  models.AccuracyApproximate,
			}
		}
	}

	return models.RegistrationEstimate{
		Year:      newestMilestone.Year,
		Month:     int(newestMilestone.Month),
		Day:       newestMilestone.Day,
		Estimated: true,
		Accuracy:  models.AccuracyApproximate,
	}
}
