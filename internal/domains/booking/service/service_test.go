package service_test

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carrent/config"
	kafkaMocks "carrent/infras/kafka/mocks"
	"carrent/infras/otel/mocks"
	"carrent/internal/domains/booking/admission"
	bookingMocks "carrent/internal/domains/booking/mocks"
	"carrent/internal/domains/booking/model"
	"carrent/internal/domains/booking/model/dto"
	"carrent/internal/domains/booking/repository"
	"carrent/internal/domains/booking/service"
	carMocks "carrent/internal/domains/car/mocks"
	cacheMocks "carrent/shared/cache/mocks"
	"carrent/shared/constant"
	"carrent/shared/failure"
	gModel "carrent/shared/model"
)

// fixedClock pins today so validation outcomes do not depend on the
// wall clock.
type fixedClock struct {
	day time.Time
}

func (f fixedClock) Today() time.Time {
	return f.day
}

var today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

type bookingFixture struct {
	repo    *bookingMocks.MockBooking
	carRepo *carMocks.MockCar
	cache   *cacheMocks.MockRedisCache
	kafka   *kafkaMocks.MockClient
	svc     service.Booking
}

func newBookingFixture(t *testing.T, ctrl *gomock.Controller) bookingFixture {
	t.Helper()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCarRepo := carMocks.NewMockCar(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	// Cache invalidation and event publication run asynchronously after
	// the write commits, so the calls may or may not land before the
	// test returns.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.LockWaitSeconds = 10

	svc := service.New(
		mockRepo,
		mockCarRepo,
		cfg,
		mockCache,
		mocks.NewOtel(),
		mockKafka,
		admission.NewCarLocks(),
		admission.NewCodeGenerator(rand.NewSource(1)),
		fixedClock{day: today},
	)

	return bookingFixture{
		repo:    mockRepo,
		carRepo: mockCarRepo,
		cache:   mockCache,
		kafka:   mockKafka,
		svc:     svc,
	}
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		CarID:     "car-1",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f bookingFixture)
		wantCode  int
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{}, nil)
				f.repo.EXPECT().ReservationCodes(gomock.Any()).Return(map[string]struct{}{}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unparseable start date",
			req: dto.CreateBookingRequest{
				CarID:     "car-1",
				StartDate: "10-06-2025",
				EndDate:   "2025-06-12",
			},
			setupMock: func(bookingFixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "end date before start date",
			req: dto.CreateBookingRequest{
				CarID:     "car-1",
				StartDate: "2025-06-12",
				EndDate:   "2025-06-10",
			},
			setupMock: func(bookingFixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "range in the past",
			req: dto.CreateBookingRequest{
				CarID:     "car-1",
				StartDate: "2025-05-20",
				EndDate:   "2025-05-22",
			},
			setupMock: func(bookingFixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "car does not exist",
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overlapping booking rejected",
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{
					{
						BookingID: "existing",
						Start:     time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
						End:       time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
					},
				}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "shared boundary day rejected",
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{
					{
						BookingID: "existing",
						Start:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
						End:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
					},
				}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "back to back booking admitted",
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{
					{
						BookingID: "existing",
						Start:     time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
						End:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
					},
				}, nil)
				f.repo.EXPECT().ReservationCodes(gomock.Any()).Return(map[string]struct{}{}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "uniqueness violation maps to conflict",
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{}, nil)
				f.repo.EXPECT().ReservationCodes(gomock.Any()).Return(map[string]struct{}{}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repository.ErrUniquenessViolation)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "repository failure on range listing",
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(t, ctrl)
			tt.setupMock(f)

			res, err := f.svc.Create(authedCtx("user-1"), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "car-1", res.CarID)
			assert.Equal(t, "user-1", res.UserID)
			assert.Equal(t, tt.req.StartDate, res.StartDate)
			assert.Equal(t, tt.req.EndDate, res.EndDate)
			assert.Regexp(t, "^[A-Z]{3}[0-9]{3}$", res.ReservationNumber)
		})
	}
}

// Two concurrent requests for the same car and overlapping dates must
// not both be admitted: the per-car lock serializes them, so the second
// one sees the first one's range and is rejected. Runs many pairs on
// disjoint date windows to give the race a real chance to manifest.
func TestBookingService_Create_ConcurrentSameCar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(t, ctrl)

	var mu sync.Mutex
	stored := []admission.BookedRange{}

	f.carRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	f.repo.EXPECT().ReservationCodes(gomock.Any()).Return(map[string]struct{}{}, nil).AnyTimes()
	f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").DoAndReturn(
		func(context.Context, string) ([]admission.BookedRange, error) {
			mu.Lock()
			defer mu.Unlock()

			snapshot := make([]admission.BookedRange, len(stored))
			copy(snapshot, stored)

			return snapshot, nil
		},
	).AnyTimes()
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, booking model.Booking) error {
			mu.Lock()
			defer mu.Unlock()

			stored = append(stored, admission.BookedRange{
				BookingID: booking.ID,
				Start:     booking.StartDate,
				End:       booking.EndDate,
			})

			return nil
		},
	).AnyTimes()

	const pairs = 1000

	results := make(chan error, 2*pairs)

	var wg sync.WaitGroup
	for i := range pairs {
		start := today.AddDate(0, 0, 10+3*i)
		req := dto.CreateBookingRequest{
			CarID:     "car-1",
			StartDate: start.Format("2006-01-02"),
			EndDate:   start.AddDate(0, 0, 2).Format("2006-01-02"),
		}

		for range 2 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := f.svc.Create(authedCtx("user-1"), req)
				results <- err
			}()
		}
	}

	wg.Wait()
	close(results)

	successes, conflicts := 0, 0

	for err := range results {
		switch {
		case err == nil:
			successes++
		case failure.GetCode(err) == http.StatusConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, pairs, successes)
	assert.Equal(t, pairs, conflicts)

	assert.Len(t, stored, pairs)
}

func TestBookingService_Update(t *testing.T) {
	existing := model.Booking{
		ID:                "booking-1",
		CarID:             "car-1",
		UserID:            "user-1",
		StartDate:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		ReservationNumber: "ABC123",
		Metadata: gModel.Metadata{
			CreatedBy:  "user-1",
			ModifiedBy: "user-1",
		},
	}

	validReq := dto.UpdateBookingRequest{
		StartDate: "2025-06-20",
		EndDate:   "2025-06-22",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateBookingRequest
		setupMock func(f bookingFixture)
		wantCode  int
	}{
		{
			name: "owner moves booking to free dates",
			ctx:  authedCtx("user-1"),
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{
					{BookingID: "booking-1", Start: existing.StartDate, End: existing.EndDate},
				}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "own range does not conflict with itself",
			ctx:  authedCtx("user-1"),
			req: dto.UpdateBookingRequest{
				StartDate: "2025-06-11",
				EndDate:   "2025-06-13",
			},
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{
					{BookingID: "booking-1", Start: existing.StartDate, End: existing.EndDate},
				}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "new dates collide with another booking",
			ctx:  authedCtx("user-1"),
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{
					{BookingID: "booking-1", Start: existing.StartDate, End: existing.EndDate},
					{
						BookingID: "other",
						Start:     time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
						End:       time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
					},
				}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "booking not found",
			ctx:  authedCtx("user-1"),
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "stranger cannot move someone else's booking",
			ctx:  authedCtx("user-2"),
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "admin can move someone else's booking",
			ctx: context.WithValue(
				authedCtx("admin-1"), constant.ContextKeyUserRole, constant.RoleAdmin,
			),
			req: validReq,
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "concurrent writer detected at update",
			ctx:  authedCtx("user-1"),
			req:  validReq,
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.repo.EXPECT().ListRanges(gomock.Any(), "car-1").Return([]admission.BookedRange{}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrUniquenessViolation)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "invalid dates rejected before any lookup",
			ctx:  authedCtx("user-1"),
			req: dto.UpdateBookingRequest{
				StartDate: "2025-06-22",
				EndDate:   "2025-06-20",
			},
			setupMock: func(bookingFixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(t, ctrl)
			tt.setupMock(f)

			err := f.svc.Update(tt.ctx, tt.req, "booking-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	existing := model.Booking{
		ID:     "booking-1",
		CarID:  "car-1",
		UserID: "user-1",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f bookingFixture)
		wantCode  int
	}{
		{
			name: "owner cancels booking",
			ctx:  authedCtx("user-1"),
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "booking not found",
			ctx:  authedCtx("user-1"),
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "stranger cannot cancel",
			ctx:  authedCtx("user-2"),
			setupMock: func(f bookingFixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(t, ctrl)
			tt.setupMock(f)

			err := f.svc.Delete(tt.ctx, "booking-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(t, ctrl)

	existing := model.Booking{
		ID:                "booking-1",
		CarID:             "car-1",
		UserID:            "user-1",
		StartDate:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		ReservationNumber: "ABC123",
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

	res, err := f.svc.Get(authedCtx("user-1"), "booking-1")

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "2025-06-10", res.StartDate)
	assert.Equal(t, "2025-06-12", res.EndDate)
	assert.Equal(t, "ABC123", res.ReservationNumber)
}
