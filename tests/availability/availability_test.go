package availability_test

import (
	"testing"
	"time"

	"github.com/lrad-tours/voyages-api/internal/availability"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		totalSeats     int
		availableSeats int
		departureDate  time.Time
		wantStatus     availability.Status
		wantPct        float64
	}{
		{
			name:           "future departure with plenty of seats",
			totalSeats:     20,
			availableSeats: 12,
			departureDate:  now.AddDate(0, 1, 0),
			wantStatus:     availability.StatusAvailable,
			wantPct:        60,
		},
		{
			name:           "low availability at fixed threshold",
			totalSeats:     20,
			availableSeats: 5,
			departureDate:  now.AddDate(0, 1, 0),
			wantStatus:     availability.StatusLow,
			wantPct:        25,
		},
		{
			name:           "low availability scenario",
			totalSeats:     20,
			availableSeats: 3,
			departureDate:  now.AddDate(0, 1, 0),
			wantStatus:     availability.StatusLow,
			wantPct:        15,
		},
		{
			name:           "sold out scenario",
			totalSeats:     15,
			availableSeats: 0,
			departureDate:  now.AddDate(0, 1, 0),
			wantStatus:     availability.StatusSoldOut,
			wantPct:        0,
		},
		{
			name:           "past takes precedence over sold out",
			totalSeats:     10,
			availableSeats: 0,
			departureDate:  now.AddDate(0, 0, -1),
			wantStatus:     availability.StatusPast,
			wantPct:        0,
		},
		{
			name:           "past takes precedence over available",
			totalSeats:     10,
			availableSeats: 8,
			departureDate:  now.AddDate(0, 0, -1),
			wantStatus:     availability.StatusPast,
			wantPct:        80,
		},
		{
			name:           "departing later today is not past",
			totalSeats:     10,
			availableSeats: 8,
			departureDate:  time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC),
			wantStatus:     availability.StatusAvailable,
			wantPct:        80,
		},
		{
			name:           "zero capacity guards division by zero",
			totalSeats:     0,
			availableSeats: 0,
			departureDate:  now.AddDate(0, 1, 0),
			wantStatus:     availability.StatusSoldOut,
			wantPct:        0,
		},
		{
			name:           "fully available",
			totalSeats:     20,
			availableSeats: 20,
			departureDate:  now.AddDate(0, 1, 0),
			wantStatus:     availability.StatusAvailable,
			wantPct:        100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, pct := availability.Evaluate(tt.totalSeats, tt.availableSeats, tt.departureDate, now)
			assert.Equal(t, tt.wantStatus, status)
			assert.InDelta(t, tt.wantPct, pct, 0.0001)
		})
	}
}

func TestPercentageBounds(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for avail := 0; avail <= total; avail++ {
			pct := availability.Percentage(total, avail)
			assert.GreaterOrEqual(t, pct, 0.0)
			assert.LessOrEqual(t, pct, 100.0)
		}
	}
}

func TestReserveDisabled(t *testing.T) {
	assert.True(t, availability.StatusPast.ReserveDisabled())
	assert.True(t, availability.StatusSoldOut.ReserveDisabled())
	assert.False(t, availability.StatusLow.ReserveDisabled())
	assert.False(t, availability.StatusAvailable.ReserveDisabled())
}
