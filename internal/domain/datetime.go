package domain

import (
	"fmt"
	"time"
)

// CombinedLayout is the timestamp format the backend expects for appointment
// creation, e.g. "2025-03-01T14:30:00".
const CombinedLayout = "2006-01-02T15:04:05"

const dateLayout = "2006-01-02"

// CombineDateTime joins a "yyyy-MM-dd" date and an "HH:mm" clock into the
// combined timestamp sent to the backend. Seconds are always zero-padded on.
func CombineDateTime(date, clock string) string {
	if date == "" || clock == "" {
		return ""
	}
	if len(clock) == 5 {
		clock += ":00"
	}
	return date + "T" + clock
}

// VisitTime resolves when the appointment takes place. It tries the canonical
// combined timestamp first, then RFC3339, then falls back to the deprecated
// separate date field with a clock-only AppointmentTime.
func (a *Appointment) VisitTime() (time.Time, bool) {
	for _, layout := range []string{CombinedLayout, time.RFC3339} {
		if t, err := time.Parse(layout, a.AppointmentTime); err == nil {
			return t, true
		}
	}

	if a.AppointmentDate != "" {
		d, err := time.Parse(dateLayout, a.AppointmentDate)
		if err != nil {
			return time.Time{}, false
		}
		var hh, mm int
		fmt.Sscanf(a.AppointmentTime, "%d:%d", &hh, &mm)
		return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}
