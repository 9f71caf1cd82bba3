package analyzer

import (
	"fmt"
	"time"

	"github.com/accountlens/accountlens/internal/models"
)

// Coarse presence labels. One-to-one with the coarse PresenceKind values.
const (
	statusOnline    = "Online"
	statusRecently  = "Recently"
	statusLastWeek  = "Within a week"
	statusLastMonth = "Within a month"
	statusLongAgo   = "Long time ago"
	statusUnknown   = "Unknown"
)

// ClassifyStatus turns a raw presence descriptor into a display label.
// Exact timestamps are bucketed by elapsed time against now; both sides are
// converted to UTC before subtraction so mixed-zone inputs cannot skew the
// result. Coarse kinds map through a fixed table. Never fails: unrecognized
// or absent input yields "Unknown".
func ClassifyStatus(p models.Presence, now time.Time) string {
	switch p.Kind {
	case models.PresenceExact:
		return lastSeenLabel(p.LastOnline, now)
	case models.PresenceOnline:
		return statusOnline
	case models.PresenceRecently:
		return statusRecently
	case models.PresenceLastWeek:
		return statusLastWeek
	case models.PresenceLastMonth:
		return statusLastMonth
	case models.PresenceLongAgo:
		return statusLongAgo
	default:
		return statusUnknown
	}
}

// lastSeenLabel buckets an exact last-online timestamp. Division is floored
// and the first matching rule wins: years, months, days, then the sub-day
// remainder in hours and minutes.
func lastSeenLabel(lastOnline, now time.Time) string {
	elapsed := now.UTC().Sub(lastOnline.UTC())
	if elapsed < 0 {
		elapsed = 0
	}

	days := int(elapsed / (24 * time.Hour))
	remainder := int((elapsed % (24 * time.Hour)) / time.Second)

	switch {
	case days > 365:
		return fmt.Sprintf("Last seen: %d year(s) ago", days/365)
	case days > 30:
		return fmt.Sprintf("Last seen: %d month(s) ago", days/30)
	case days > 0:
		return fmt.Sprintf("Last seen: %d day(s) ago", days)
	case remainder > 3600:
		return fmt.Sprintf("Last seen: %d hour(s) ago", remainder/3600)
	case remainder > 60:
		return fmt.Sprintf("Last seen: %d minute(s) ago", remainder/60)
	default:
		return "Last seen: Recently"
	}
}
