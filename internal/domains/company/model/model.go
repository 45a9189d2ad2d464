package model

import "carrent/shared/model"

const (
	TableName  = "companies"
	EntityName = "company"

	FieldID         = "id"
	FieldName       = "name"
	FieldAddress    = "address"
	FieldWebsiteURL = "website_url"
)

type Company struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Address     string `db:"address"`
	WebsiteURL  string `db:"website_url"`
	model.Metadata
}
