package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"carrent/config"
	"carrent/infras/otel"
	"carrent/infras/s3"
	"carrent/internal/domains/carimage/model"
	"carrent/internal/domains/carimage/model/dto"
	"carrent/internal/domains/carimage/repository"
	carModel "carrent/internal/domains/car/model"
	carRepo "carrent/internal/domains/car/repository"
	"carrent/shared"
	"carrent/shared/cache"
	"carrent/shared/constant"
	gDto "carrent/shared/dto"
	"carrent/shared/failure"
)

const (
	cacheGetCarImages = "carimage:gets"
)

type CarImage interface {
	Upload(ctx context.Context, req dto.UploadCarImageRequest, carID string) (dto.CarImageResponse, error)
	GetByCar(ctx context.Context, carID string) (dto.GetCarImagesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.CarImage
	carRepo carRepo.Car
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	s3      s3.S3
}

func New(repo repository.CarImage, carRepo carRepo.Car, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) CarImage {
	return &serviceImpl{
		repo:    repo,
		carRepo: carRepo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		s3:      s3,
	}
}

// Upload stores the image in S3 under the car's directory, then persists
// the resulting URL.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadCarImageRequest, carID string) (res dto.CarImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	carExists, err := s.carRepo.Exist(ctx, shared.FilterByID(carID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if car exists")

		return res, fmt.Errorf("failed to check if car exists: %w", err)
	}

	if !carExists {
		return res, failure.NotFound("car not found") //nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	directory := fmt.Sprintf("%s/%s", carModel.TableName, carID)

	url, err := s.s3.UploadFile(ctx, bucketName, directory, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	image := req.ToModel(carID, url, user)

	if err = s.repo.Insert(ctx, image); err != nil {
		log.Error().Err(err).Msg("failed to create car image")

		return res, fmt.Errorf("failed to create car image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetCarImages)
	}()

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) GetByCar(ctx context.Context, carID string) (res dto.GetCarImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCar")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCarImages, carID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for car images")

		return res, nil
	}

	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   constant.MaxCarImagesPerCar,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	images, err := s.repo.GetAll(ctx, params, shared.FilterByID(carID, model.FieldCarID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car images")

		return res, fmt.Errorf("failed to get car images: %w", err)
	}

	res.FromModels(images)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save car images to cache")
		}
	}()

	return res, nil
}

// Delete removes the database row first, then the S3 object
// asynchronously; an orphaned object is preferable to a dangling URL.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get car image")

		return fmt.Errorf("failed to get car image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound("car image not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete car image")

		return fmt.Errorf("failed to delete car image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetCarImages)

		bucketName := s.cfg.External.S3.BucketName

		// The object name extracted from the URL already carries the
		// car directory prefix.
		objectName := s.s3.GetObjectNameFromURL(bucketName, image.URL)
		if objectName == constant.Empty {
			log.Warn().Str("url", image.URL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("url", image.URL).Msg("failed to delete image from S3")
		}
	}()

	return nil
}
