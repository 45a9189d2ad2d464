package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"carrent/infras/otel"
	"carrent/infras/postgres"
	"carrent/internal/domains/carimage/model"
	gDto "carrent/shared/dto"
	gRepo "carrent/shared/repository"
)

type CarImage interface {
	Insert(ctx context.Context, model model.CarImage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CarImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CarImage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CarImage]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CarImage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CarImage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
