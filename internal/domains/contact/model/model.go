package model

import "carrent/shared/model"

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

type Contact struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Message string `db:"message"`
	model.Metadata
}
