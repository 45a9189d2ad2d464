package model

import "carrent/shared/model"

const (
	TableName  = "car_images"
	EntityName = "car_image"

	FieldID      = "id"
	FieldCarID   = "car_id"
	FieldURL     = "url"
	FieldCaption = "caption"
)

type CarImage struct {
	ID      string `db:"id"`
	CarID   string `db:"car_id"`
	URL     string `db:"url"`
	Caption string `db:"caption"`
	model.Metadata
}
