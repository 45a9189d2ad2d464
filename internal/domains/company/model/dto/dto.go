package dto

import (
	"github.com/google/uuid"

	"carrent/internal/domains/company/model"
	"carrent/shared"
	gDto "carrent/shared/dto"
	gModel "carrent/shared/model"
	"carrent/shared/timezone"
)

type CreateCompanyRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Address     string `json:"address"     validate:"omitempty,max=255"`
	WebsiteURL  string `json:"website_url" validate:"omitempty,url"`
}

func (c *CreateCompanyRequest) ToModel(user string) model.Company {
	return model.Company{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		WebsiteURL:  c.WebsiteURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	WebsiteURL  string `json:"website_url"`
	gDto.Metadata
}

func (r *CompanyResponse) FromModel(model model.Company) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Address = model.Address
	r.WebsiteURL = model.WebsiteURL
	r.Metadata.FromModel(model.Metadata)
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCompaniesResponse) FromModels(models []model.Company, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Companies = make([]CompanyResponse, len(models))
	for i, mod := range models {
		r.Companies[i].FromModel(mod)
	}
}
