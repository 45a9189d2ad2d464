package model

import "carrent/shared/model"

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPricePerDay = "price_per_day"
	FieldCurrency    = "currency"
	FieldMaxCapacity = "max_capacity"
	FieldDescription = "description"
)

type Car struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Category    string `db:"category"`
	PricePerDay int    `db:"price_per_day"`
	Currency    string `db:"currency"`
	MaxCapacity int    `db:"max_capacity"`
	Description string `db:"description"`
	model.Metadata
}
