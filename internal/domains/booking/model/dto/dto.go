package dto

import (
	"time"

	"github.com/google/uuid"

	"carrent/internal/domains/booking/admission"
	"carrent/internal/domains/booking/model"
	"carrent/shared"
	gDto "carrent/shared/dto"
	gModel "carrent/shared/model"
	"carrent/shared/timezone"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	CarID     string `json:"car_id"     validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

// ParseDates decodes the calendar dates of the request, truncated to
// day precision.
func (c *CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, c.StartDate)
	if err != nil {
		return start, end, err //nolint:wrapcheck
	}

	end, err = time.Parse(dateLayout, c.EndDate)
	if err != nil {
		return start, end, err //nolint:wrapcheck
	}

	return admission.Day(start), admission.Day(end), nil
}

func (c *CreateBookingRequest) ToModel(user, reservationNumber string, start, end time.Time) model.Booking {
	return model.Booking{
		ID:                uuid.NewString(),
		CarID:             c.CarID,
		UserID:            user,
		StartDate:         start,
		EndDate:           end,
		ReservationNumber: reservationNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest moves a booking to new dates. Date changes rerun
// the full admission sequence, so both bounds are required together.
type UpdateBookingRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

func (u *UpdateBookingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, u.StartDate)
	if err != nil {
		return start, end, err //nolint:wrapcheck
	}

	end, err = time.Parse(dateLayout, u.EndDate)
	if err != nil {
		return start, end, err //nolint:wrapcheck
	}

	return admission.Day(start), admission.Day(end), nil
}

type BookingResponse struct {
	ID                string `json:"id"`
	CarID             string `json:"car_id"`
	UserID            string `json:"user_id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	ReservationNumber string `json:"reservation_number"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CarID = model.CarID
	r.UserID = model.UserID
	r.StartDate = model.StartDate.Format(dateLayout)
	r.EndDate = model.EndDate.Format(dateLayout)
	r.ReservationNumber = model.ReservationNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
