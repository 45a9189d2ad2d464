package dto

import (
	"github.com/google/uuid"

	"carrent/internal/domains/car/model"
	"carrent/shared"
	"carrent/shared/constant"
	gDto "carrent/shared/dto"
	gModel "carrent/shared/model"
	"carrent/shared/timezone"
)

type CreateCarRequest struct {
	Name        string `json:"name"          validate:"required,max=100"`
	Category    string `json:"category"      validate:"required,oneof=sedan suv hatchback convertible pickup"`
	PricePerDay int    `json:"price_per_day" validate:"required,gte=1"`
	Currency    string `json:"currency"      validate:"omitempty,oneof=EUR"`
	MaxCapacity int    `json:"max_capacity"  validate:"required,gte=1"`
	Description string `json:"description"   validate:"omitempty,max=1000"`
}

func (c *CreateCarRequest) ToModel(user string) model.Car {
	currency := c.Currency
	if currency == constant.Empty {
		currency = constant.CurrencyEUR
	}

	return model.Car{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Category:    c.Category,
		PricePerDay: c.PricePerDay,
		Currency:    currency,
		MaxCapacity: c.MaxCapacity,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCarRequest struct {
	Name        string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Category    string `db:"category"      json:"category"      validate:"omitempty,oneof=sedan suv hatchback convertible pickup"`
	PricePerDay int    `db:"price_per_day" json:"price_per_day" validate:"omitempty,gte=1"`
	MaxCapacity int    `db:"max_capacity"  json:"max_capacity"  validate:"omitempty,gte=1"`
	Description string `db:"description"   json:"description"   validate:"omitempty,max=1000"`
}

type CarResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	PricePerDay int    `json:"price_per_day"`
	Currency    string `json:"currency"`
	MaxCapacity int    `json:"max_capacity"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(model model.Car) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.PricePerDay = model.PricePerDay
	r.Currency = model.Currency
	r.MaxCapacity = model.MaxCapacity
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetCarsResponse) FromModels(models []model.Car, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cars = make([]CarResponse, len(models))
	for i, mod := range models {
		r.Cars[i].FromModel(mod)
	}
}
