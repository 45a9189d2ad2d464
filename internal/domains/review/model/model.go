package model

import "carrent/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID      = "id"
	FieldCarID   = "car_id"
	FieldUserID  = "user_id"
	FieldRating  = "rating"
	FieldComment = "comment"
)

type Review struct {
	ID      string `db:"id"`
	CarID   string `db:"car_id"`
	UserID  string `db:"user_id"`
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`
	model.Metadata
}
