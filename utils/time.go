package utils

import "time"

// ToRiyadh converts a time to Arabia Standard Time for display in
// emails and notifications.
func ToRiyadh(t time.Time) time.Time {
	loc, err := time.LoadLocation("Asia/Riyadh")
	if err != nil {
		return t // Fallback to UTC if the zone database is missing
	}
	return t.In(loc)
}
