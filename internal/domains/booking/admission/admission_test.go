package admission_test

import (
	"testing"
	"time"

	"carrent/internal/domains/booking/admission"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateRange(t *testing.T) {
	today := date(2025, 6, 1)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:    "valid future range",
			start:   date(2025, 6, 10),
			end:     date(2025, 6, 15),
			wantErr: nil,
		},
		{
			name:    "single day booking today",
			start:   today,
			end:     today,
			wantErr: nil,
		},
		{
			name:    "inverted range",
			start:   date(2025, 6, 10),
			end:     date(2025, 6, 1),
			wantErr: admission.ErrInvalidRange,
		},
		{
			name:    "start in the past",
			start:   date(2025, 5, 20),
			end:     date(2025, 6, 25),
			wantErr: admission.ErrPastDate,
		},
		{
			name:    "whole range in the past",
			start:   date(2025, 5, 20),
			end:     date(2025, 5, 25),
			wantErr: admission.ErrPastDate,
		},
		{
			name:    "inverted range reported before past date",
			start:   date(2025, 5, 10),
			end:     date(2025, 5, 1),
			wantErr: admission.ErrInvalidRange,
		},
		{
			name:    "time-of-day does not matter",
			start:   time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC),
			end:     time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := admission.ValidateRange(tt.start, tt.end, today)

			if err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConflicts(t *testing.T) {
	existing := []admission.BookedRange{
		{BookingID: "b1", Start: date(2025, 6, 1), End: date(2025, 6, 5)},
		{BookingID: "b2", Start: date(2025, 6, 20), End: date(2025, 6, 22)},
	}

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		excludeID string
		want      bool
	}{
		{
			name:  "free gap between bookings",
			start: date(2025, 6, 10),
			end:   date(2025, 6, 15),
			want:  false,
		},
		{
			name:  "adjacent range starting the day after",
			start: date(2025, 6, 6),
			end:   date(2025, 6, 10),
			want:  false,
		},
		{
			name:  "adjacent range ending the day before",
			start: date(2025, 6, 17),
			end:   date(2025, 6, 19),
			want:  false,
		},
		{
			name:  "shared boundary day conflicts",
			start: date(2025, 6, 5),
			end:   date(2025, 6, 8),
			want:  true,
		},
		{
			name:  "range fully inside an existing booking",
			start: date(2025, 6, 2),
			end:   date(2025, 6, 3),
			want:  true,
		},
		{
			name:  "range swallowing an existing booking",
			start: date(2025, 5, 30),
			end:   date(2025, 6, 7),
			want:  true,
		},
		{
			name:      "overlap with self is excluded on update",
			start:     date(2025, 6, 2),
			end:       date(2025, 6, 6),
			excludeID: "b1",
			want:      false,
		},
		{
			name:      "exclusion does not hide other bookings",
			start:     date(2025, 6, 2),
			end:       date(2025, 6, 21),
			excludeID: "b1",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := admission.Conflicts(existing, tt.start, tt.end, tt.excludeID)

			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestConflicts_EmptySet(t *testing.T) {
	if admission.Conflicts(nil, date(2025, 6, 1), date(2025, 6, 5), "") {
		t.Error("expected no conflict against an empty range set")
	}
}
