package utils

import (
	"time"

	"astroportal/internal/models/db_models"
)

// Portal time (Warsaw), used for validity windows and display.
var plLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Warsaw"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(plLoc)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(plLoc).Format(time.RFC3339)
}

// ValidityWindow computes the horoscope validity window for a category
// starting at now. The end is nil for the lifetime category.
func ValidityWindow(category db_models.HoroscopeType, now time.Time) (int64, *int64) {
	now = now.In(plLoc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, plLoc)

	var end time.Time
	switch category {
	case db_models.HoroscopeDaily:
		end = dayStart.AddDate(0, 0, 1)
	case db_models.HoroscopeWeekly:
		end = dayStart.AddDate(0, 0, 7)
	case db_models.HoroscopeMonthly:
		end = dayStart.AddDate(0, 1, 0)
	case db_models.HoroscopeYearly:
		end = dayStart.AddDate(1, 0, 0)
	default:
		// lifetime: open-ended
		return dayStart.Unix(), nil
	}
	endUnix := end.Unix()
	return dayStart.Unix(), &endUnix
}
