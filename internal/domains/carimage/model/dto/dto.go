package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"carrent/internal/domains/carimage/model"
	gDto "carrent/shared/dto"
	gModel "carrent/shared/model"
	"carrent/shared/timezone"
)

type UploadCarImageRequest struct {
	Image     *multipart.FileHeader `json:"image"   swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
	Caption   string                `json:"caption" validate:"omitempty,max=255"`
}

func (r *UploadCarImageRequest) ToModel(carID, url, user string) model.CarImage {
	return model.CarImage{
		ID:      uuid.NewString(),
		CarID:   carID,
		URL:     url,
		Caption: r.Caption,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CarImageResponse struct {
	ID      string `json:"id"`
	CarID   string `json:"car_id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	gDto.Metadata
}

func (r *CarImageResponse) FromModel(model model.CarImage) {
	r.ID = model.ID
	r.CarID = model.CarID
	r.URL = model.URL
	r.Caption = model.Caption
	r.Metadata.FromModel(model.Metadata)
}

type GetCarImagesResponse struct {
	Images []CarImageResponse `json:"images"`
}

func (r *GetCarImagesResponse) FromModels(models []model.CarImage) {
	r.Images = make([]CarImageResponse, len(models))
	for i, m := range models {
		r.Images[i].FromModel(m)
	}
}
