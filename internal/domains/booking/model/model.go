package model

import (
	"carrent/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldCarID             = "car_id"
	FieldUserID            = "user_id"
	FieldStartDate         = "start_date"
	FieldEndDate           = "end_date"
	FieldReservationNumber = "reservation_number"
)

type Booking struct {
	ID                string    `db:"id"`
	CarID             string    `db:"car_id"`
	UserID            string    `db:"user_id"`
	StartDate         time.Time `db:"start_date"`
	EndDate           time.Time `db:"end_date"`
	ReservationNumber string    `db:"reservation_number"`
	model.Metadata
}
