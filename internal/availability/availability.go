package availability

import "time"

// Status categorises a departure for display. The four values are mutually
// exclusive and evaluated in precedence order: past > sold out > low > available.
type Status string

const (
	StatusPast      Status = "past"
	StatusSoldOut   Status = "sold_out"
	StatusLow       Status = "low_availability"
	StatusAvailable Status = "available"
)

// LowSeatThreshold is the fixed seat count at or below which a departure is
// flagged as low availability.
const LowSeatThreshold = 5

// ReserveDisabled reports whether the reserve control must be disabled for
// this status.
func (s Status) ReserveDisabled() bool {
	return s == StatusPast || s == StatusSoldOut
}

// Evaluate derives the availability status and percentage for a departure.
// Dates are truncated to midnight before the past comparison, so a departure
// leaving later today is not past. A non-positive total seat count is treated
// as sold out with 0%.
func Evaluate(totalSeats, availableSeats int, departureDate, now time.Time) (Status, float64) {
	if totalSeats <= 0 {
		if startOfDay(departureDate).Before(startOfDay(now)) {
			return StatusPast, 0
		}
		return StatusSoldOut, 0
	}

	pct := Percentage(totalSeats, availableSeats)

	if startOfDay(departureDate).Before(startOfDay(now)) {
		return StatusPast, pct
	}
	if availableSeats <= 0 {
		return StatusSoldOut, 0
	}
	if availableSeats <= LowSeatThreshold {
		return StatusLow, pct
	}
	return StatusAvailable, pct
}

// Percentage returns available/total*100 clamped to [0,100]. Feeds the
// visual progress indicator only.
func Percentage(totalSeats, availableSeats int) float64 {
	if totalSeats <= 0 {
		return 0
	}
	pct := float64(availableSeats) / float64(totalSeats) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
