package attendance

import (
	"strings"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
)

// Attendance classification and lateness are pure functions over the day's
// signals. Every view recomputes them; no classification is ever stored.

const (
	statusPresent = "Present"
	statusAbsent  = "Absent"

	latenessLate   = "Late"
	latenessOnTime = "On time"
	latenessEarly  = "Early"

	latenessNone = "-"
)

// Fixed-deadline policy bounds, minutes since midnight.
const (
	checkInDeadlineMinutes  = 9 * 60
	checkOutDeadlineMinutes = 14*60 + 30
)

const shiftToleranceMinutes = 30

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ResolveStatus applies the precedence chain: any punch wins, then an
// approved leave label, then an approved official-work label, then a holiday
// name, then "Absent". The label arguments are empty when the signal is
// absent for the day.
func ResolveStatus(punched bool, leaveLabel, officialLabel, holidayName string) string {
	switch {
	case punched:
		return statusPresent
	case leaveLabel != "":
		return leaveLabel
	case officialLabel != "":
		return officialLabel
	case holidayName != "":
		return holidayName
	default:
		return statusAbsent
	}
}

// EffectiveTimes reduces a day's punches to the earliest check-in and the
// latest check-out, where early check-outs count as check-outs.
func EffectiveTimes(events []attendance.PunchEvent) (checkIn, checkOut *time.Time) {
	for _, e := range events {
		ts := e.Timestamp
		switch e.Direction {
		case attendance.DirectionCheckIn:
			if checkIn == nil || ts.Before(*checkIn) {
				checkIn = &ts
			}
		case attendance.DirectionCheckOut, attendance.DirectionEarlyCheckOut:
			if checkOut == nil || ts.After(*checkOut) {
				checkOut = &ts
			}
		}
	}
	return checkIn, checkOut
}

// PunchLabels joins the day's raw direction labels in timestamp order. "-"
// when the day has no punches.
func PunchLabels(events []attendance.PunchEvent) string {
	if len(events) == 0 {
		return latenessNone
	}
	labels := make([]string, 0, len(events))
	for _, e := range events {
		labels = append(labels, string(e.Direction))
	}
	return strings.Join(labels, ", ")
}

// FixedLateness grades a day against the fixed 09:00 check-in and 14:30
// check-out deadlines. A check-in past the deadline reads "Late"; otherwise a
// check-out before the deadline reads "Early". A day with no punches also
// reads "Early"; reports mask this to "-" because such days resolve to
// Absent, but the label is kept for parity with the historical reports.
func FixedLateness(checkIn, checkOut *time.Time) string {
	if checkIn == nil && checkOut == nil {
		return latenessEarly
	}
	if checkIn != nil && minutesOfDay(*checkIn) > checkInDeadlineMinutes {
		return latenessLate
	}
	if checkOut != nil && minutesOfDay(*checkOut) < checkOutDeadlineMinutes {
		return latenessEarly
	}
	return latenessOnTime
}

// ShiftLateness grades a day against the employee's roster window. Check-in
// gets a 30-minute tolerance past the window start. Sub-labels for the halves
// that happened are comma-joined; "-" when there are no punches or the window
// is missing or unparseable.
func ShiftLateness(checkIn, checkOut *time.Time, window shift.Window) string {
	if checkIn == nil && checkOut == nil {
		return latenessNone
	}
	if !window.Valid {
		return latenessNone
	}

	var parts []string
	if checkIn != nil {
		tolerated := minutesOfDay(window.Start) + shiftToleranceMinutes
		if minutesOfDay(*checkIn) <= tolerated {
			parts = append(parts, "On Time-In")
		} else {
			parts = append(parts, "Late In")
		}
	}
	if checkOut != nil {
		if minutesOfDay(*checkOut) < minutesOfDay(window.End) {
			parts = append(parts, "Early Out")
		} else {
			parts = append(parts, "On Time-Out")
		}
	}
	if len(parts) == 0 {
		return latenessNone
	}
	return strings.Join(parts, ", ")
}

// maskAbsent hides lateness on days that resolved to Absent.
func maskAbsent(status, lateness string) string {
	if status == statusAbsent {
		return latenessNone
	}
	return lateness
}
