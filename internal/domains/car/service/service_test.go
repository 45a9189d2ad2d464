package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carrent/config"
	"carrent/infras/otel/mocks"
	carMocks "carrent/internal/domains/car/mocks"
	"carrent/internal/domains/car/model"
	"carrent/internal/domains/car/model/dto"
	"carrent/internal/domains/car/service"
	cacheMocks "carrent/shared/cache/mocks"
	"carrent/shared/constant"
	gDto "carrent/shared/dto"
	"carrent/shared/failure"
)

type carFixture struct {
	repo  *carMocks.MockCar
	cache *cacheMocks.MockRedisCache
	svc   service.Car
}

func newCarFixture(t *testing.T, ctrl *gomock.Controller) carFixture {
	t.Helper()

	mockRepo := carMocks.NewMockCar(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	return carFixture{
		repo:  mockRepo,
		cache: mockCache,
		svc:   service.New(mockRepo, cfg, mockCache, mocks.NewOtel()),
	}
}

func adminCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func TestCarService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCarFixture(t, ctrl)

	req := dto.CreateCarRequest{
		Name:        "Renault Clio",
		Category:    "hatchback",
		PricePerDay: 35,
		MaxCapacity: 5,
	}

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, car model.Car) error {
			assert.Equal(t, "Renault Clio", car.Name)
			assert.Equal(t, constant.CurrencyEUR, car.Currency)
			assert.Equal(t, "admin-1", car.CreatedBy)
			assert.NotEmpty(t, car.ID)

			return nil
		},
	)

	err := f.svc.Create(adminCtx(), req)

	assert.NoError(t, err)
}

func TestCarService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f carFixture)
		wantCode  int
	}{
		{
			name: "car found on cache miss",
			setupMock: func(f carFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Car{
					ID:          "car-1",
					Name:        "Renault Clio",
					Category:    "hatchback",
					PricePerDay: 35,
					Currency:    constant.CurrencyEUR,
					MaxCapacity: 5,
				}, nil)
			},
		},
		{
			name: "car not found",
			setupMock: func(f carFixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Car{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newCarFixture(t, ctrl)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "car-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "car-1", res.ID)
			assert.Equal(t, "Renault Clio", res.Name)
		})
	}
}

func TestCarService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCarFixture(t, ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	// Both the listing and the count miss the cache.
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Car{
		{ID: "car-1", Name: "Renault Clio"},
		{ID: "car-2", Name: "Fiat 500"},
	}, nil)

	res, err := f.svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Len(t, res.Cars, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestCarService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateCarRequest
		setupMock func(f carFixture)
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateCarRequest{PricePerDay: 40},
			setupMock: func(f carFixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "empty update rejected",
			req:       dto.UpdateCarRequest{},
			setupMock: func(carFixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "car not found",
			req:  dto.UpdateCarRequest{PricePerDay: 40},
			setupMock: func(f carFixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newCarFixture(t, ctrl)
			tt.setupMock(f)

			err := f.svc.Update(adminCtx(), tt.req, "car-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCarService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCarFixture(t, ctrl)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	err := f.svc.Delete(adminCtx(), "car-1")

	assert.NoError(t, err)
}
