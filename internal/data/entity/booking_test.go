package entity

import (
	"testing"
	"time"
)

func TestRentalDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"SingleDay", day(5), day(5), 1},
		{"InclusiveRange", day(1), day(3), 3},
		{"FullWeek", day(1), day(7), 7},
		{"EndBeforeStart", day(5), day(3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{StartDate: tt.start, EndDate: tt.end}
			if got := b.RentalDays(); got != tt.want {
				t.Errorf("RentalDays() = %d, want %d", got, tt.want)
			}
		})
	}
}
