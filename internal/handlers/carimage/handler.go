package carimage

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"carrent/infras/otel"
	"carrent/internal/domains/carimage/model/dto"
	"carrent/internal/domains/carimage/service"
	"carrent/shared/constant"
	"carrent/shared/validator"
	"carrent/transport/http/response"
)

type Handler struct {
	service service.CarImage
	otel    otel.Otel
}

func New(service service.CarImage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// CarRouter registers the per-car image routes on the /cars group.
func (handler *Handler) CarRouter(router chi.Router) {
	router.Post("/{id}/images", handler.UploadCarImage)
	router.Get("/{id}/images", handler.GetCarImages)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/images", func(routerGroup chi.Router) {
		routerGroup.Delete("/{id}", handler.DeleteCarImage)
	})
}

// UploadCarImage uploads an image for a car to S3.
// @Summary Upload a car image
// @Description Upload an image file for a car. The image is stored in S3 and its URL persisted.
// @Tags CarImage
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Car ID"
// @Param file formData file true "Image file to upload"
// @Param caption formData string false "Image caption"
// @Success 201 {object} response.Data[dto.CarImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cars/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadCarImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadCarImage")
	defer scope.End()

	carID := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadCarImageRequest{
		Image:     fileHeader,
		ImageFile: file,
		Caption:   r.FormValue("caption"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req, carID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload car image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Car image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCarImages lists the images of a car.
// @Summary Get car images
// @Description Retrieve all images attached to a car.
// @Tags CarImage
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} response.Data[dto.GetCarImagesResponse] "List of car images"
// @Failure 500 {object} response.Error
// @Router /v1/cars/{id}/images [get]
func (handler *Handler) GetCarImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCarImages")
	defer scope.End()

	carID := chi.URLParam(r, constant.RequestParamID)

	images, err := handler.service.GetByCar(ctx, carID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get car images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Car images retrieved successfully")

	response.WithJSON(w, http.StatusOK, images)
}

// DeleteCarImage deletes a car image by its ID.
// @Summary Delete a car image by ID
// @Description Delete a car image; the S3 object is removed asynchronously.
// @Tags CarImage
// @Accept json
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Message "Image deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/images/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCarImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCarImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete car image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Car image deleted successfully")

	response.WithMessage(w, http.StatusOK, "Image deleted successfully")
}
