package event

import "time"

// NextDay returns the first event scheduled for the day after now.
// Only the calendar date is compared, evaluated in now's location; the
// time of day is ignored. Listing order is preserved, so when two
// rounds share a date the one appearing first on the page wins.
// Returns nil when no round is scheduled tomorrow.
func NextDay(events []*Event, now time.Time) *Event {
	ty, tm, td := now.AddDate(0, 0, 1).Date()
	for _, evt := range events {
		y, m, d := evt.StartTime.In(now.Location()).Date()
		if y == ty && m == tm && d == td {
			return evt
		}
	}
	return nil
}
