package scheduling

import "time"

// Recurrence step identifiers, matching appointment_slots.recurrence
const (
	StepDaily   = "daily"
	StepWeekly  = "weekly"
	StepMonthly = "monthly"
)

// NextOccurrence advances a date by one recurrence step. Unknown steps
// return the zero time so expansion loops terminate.
func NextOccurrence(date time.Time, step string) time.Time {
	switch step {
	case StepDaily:
		return date.AddDate(0, 0, 1)
	case StepWeekly:
		return date.AddDate(0, 0, 7)
	case StepMonthly:
		return date.AddDate(0, 1, 0)
	default:
		return time.Time{}
	}
}

// Occurrences lists every recurrence date strictly after start up to and
// including endDate.
func Occurrences(start, endDate time.Time, step string) []time.Time {
	var dates []time.Time
	for cursor := NextOccurrence(start, step); !cursor.IsZero() && !cursor.After(endDate); cursor = NextOccurrence(cursor, step) {
		dates = append(dates, cursor)
	}
	return dates
}
