package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlot_Overlaps(t *testing.T) {
	base := time.Date(2025, 10, 13, 16, 30, 0, 0, time.UTC)
	slot := TimeSlot{StartTime: base, Duration: 90 * time.Minute}

	tests := []struct {
		name     string
		other    TimeSlot
		expected bool
	}{
		{
			name:     "identical slot",
			other:    TimeSlot{StartTime: base, Duration: 90 * time.Minute},
			expected: true,
		},
		{
			name:     "partial overlap at the end",
			other:    TimeSlot{StartTime: base.Add(time.Hour), Duration: time.Hour},
			expected: true,
		},
		{
			name:     "contained inside",
			other:    TimeSlot{StartTime: base.Add(15 * time.Minute), Duration: 30 * time.Minute},
			expected: true,
		},
		{
			name:     "starts exactly at the end",
			other:    TimeSlot{StartTime: base.Add(90 * time.Minute), Duration: time.Hour},
			expected: false,
		},
		{
			name:     "ends exactly at the start",
			other:    TimeSlot{StartTime: base.Add(-time.Hour), Duration: time.Hour},
			expected: false,
		},
		{
			name:     "fully before",
			other:    TimeSlot{StartTime: base.Add(-3 * time.Hour), Duration: time.Hour},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slot.Overlaps(tt.other))
			assert.Equal(t, tt.expected, tt.other.Overlaps(slot))
		})
	}
}

func TestUserReservation_Equal(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	start := time.Date(2025, 10, 13, 16, 30, 0, 0, time.UTC)

	a := UserReservation{StartTime: start, TeamID: "1"}
	b := UserReservation{StartTime: start.In(moscow), TeamID: "1"}
	c := UserReservation{StartTime: start, TeamID: "2"}
	d := UserReservation{StartTime: start.Add(time.Minute), TeamID: "1"}

	// Один и тот же момент времени в другой зоне остается тем же бронированием
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestUserReservation_IsFuture(t *testing.T) {
	now := time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

	assert.True(t, UserReservation{StartTime: now.Add(time.Hour)}.IsFuture(now))
	assert.False(t, UserReservation{StartTime: now.Add(-time.Hour)}.IsFuture(now))
	assert.False(t, UserReservation{StartTime: now}.IsFuture(now))
}
