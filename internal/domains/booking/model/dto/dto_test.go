package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carrent/internal/domains/booking/model"
	"carrent/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ParseDates(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "valid range",
			start:     "2025-06-10",
			end:       "2025-06-12",
			wantStart: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "same day",
			start:     "2025-06-10",
			end:       "2025-06-10",
			wantStart: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "wrong layout",
			start:   "10/06/2025",
			end:     "2025-06-12",
			wantErr: true,
		},
		{
			name:    "time component rejected",
			start:   "2025-06-10T10:00:00Z",
			end:     "2025-06-12",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				CarID:     "car-1",
				StartDate: tt.start,
				EndDate:   tt.end,
			}

			start, end, err := req.ParseDates()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:                "booking-1",
		CarID:             "car-1",
		UserID:            "user-1",
		StartDate:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		ReservationNumber: "XQJ204",
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "2025-06-10", res.StartDate)
	assert.Equal(t, "2025-06-12", res.EndDate)
	assert.Equal(t, "XQJ204", res.ReservationNumber)
}
