package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"carrent/config"
	"carrent/infras/kafka"
	"carrent/infras/otel"
	"carrent/internal/domains/booking/admission"
	"carrent/internal/domains/booking/model"
	"carrent/internal/domains/booking/model/dto"
	"carrent/internal/domains/booking/repository"
	carModel "carrent/internal/domains/car/model"
	carRepo "carrent/internal/domains/car/repository"
	"carrent/shared"
	"carrent/shared/cache"
	"carrent/shared/constant"
	gDto "carrent/shared/dto"
	"carrent/shared/failure"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Booking
	carRepo carRepo.Car
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	kafka   kafka.Client
	locks   *admission.CarLocks
	codes   *admission.CodeGenerator
	clock   admission.Clock
}

func New(
	repo repository.Booking,
	carRepo carRepo.Car,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
	locks *admission.CarLocks,
	codes *admission.CodeGenerator,
	clock admission.Clock,
) Booking {
	return &serviceImpl{
		repo:    repo,
		carRepo: carRepo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		kafka:   kafka,
		locks:   locks,
		codes:   codes,
		clock:   clock,
	}
}

// Create runs the booking admission sequence: validate the range, lock
// the car, check overlaps against persisted state, draw a reservation
// code and insert — all before the lock is released, so no two requests
// for the same car can both pass the overlap check.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) //nolint:wrapcheck
	}

	if err = admission.ValidateRange(start, end, s.clock.Today()); err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	carExists, err := s.carRepo.Exist(ctx, shared.FilterByID(req.CarID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if car exists")

		return res, fmt.Errorf("failed to check if car exists: %w", err)
	}

	if !carExists {
		return res, failure.BadRequestFromString("car does not exist") //nolint:wrapcheck
	}

	release, err := s.acquireCarLock(ctx, req.CarID)
	if err != nil {
		return res, err
	}
	defer release()

	booking, err := s.admit(ctx, req.CarID, start, end, constant.Empty, func(code string) model.Booking {
		return req.ToModel(user, code, start, end)
	})
	if err != nil {
		return res, err
	}

	s.afterCommit(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// Update moves a booking to new dates, re-running the full admission
// sequence as if the booking were created afresh; the booking itself is
// excluded from the overlap check. The reservation number never
// changes.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) //nolint:wrapcheck
	}

	if err = admission.ValidateRange(start, end, s.clock.Today()); err != nil {
		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.requireOwnerOrAdmin(ctx, booking.UserID); err != nil {
		return err
	}

	release, err := s.acquireCarLock(ctx, booking.CarID)
	if err != nil {
		return err
	}
	defer release()

	ranges, err := s.repo.ListRanges(ctx, booking.CarID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list booked ranges")

		return fmt.Errorf("failed to list booked ranges: %w", err)
	}

	if admission.Conflicts(ranges, start, end, booking.ID) {
		return failure.Conflict(admission.ErrOverlap.Error()) //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStartDate:     start,
		model.FieldEndDate:       end,
		constant.FieldModifiedAt: s.clock.Today(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if errors.Is(err, repository.ErrUniquenessViolation) {
			return failure.Conflict("booking conflicts with a concurrent reservation, please retry") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.requireOwnerOrAdmin(ctx, booking.UserID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// admit performs the overlap check and the insert under an already-held
// car lock. excludeID is empty on create.
func (s *serviceImpl) admit(ctx context.Context, carID string, start, end time.Time, excludeID string, build func(code string) model.Booking) (model.Booking, error) {
	ranges, err := s.repo.ListRanges(ctx, carID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list booked ranges")

		return model.Booking{}, fmt.Errorf("failed to list booked ranges: %w", err)
	}

	if admission.Conflicts(ranges, start, end, excludeID) {
		return model.Booking{}, failure.Conflict(admission.ErrOverlap.Error()) //nolint:wrapcheck
	}

	codes, err := s.repo.ReservationCodes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservation codes")

		return model.Booking{}, fmt.Errorf("failed to list reservation codes: %w", err)
	}

	code, err := s.codes.Generate(codes)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate reservation code")

		return model.Booking{}, failure.InternalError(err) //nolint:wrapcheck
	}

	booking := build(code)

	if err = s.repo.Insert(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrUniquenessViolation) {
			return model.Booking{}, failure.Conflict("booking conflicts with a concurrent reservation, please retry") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (s *serviceImpl) acquireCarLock(ctx context.Context, carID string) (func(), error) {
	waitSeconds := s.cfg.Booking.LockWaitSeconds
	if waitSeconds <= 0 {
		waitSeconds = constant.DefaultBookingLockWaitSeconds
	}

	lockCtx, cancel := context.WithTimeout(ctx, time.Duration(waitSeconds)*time.Second)

	release, err := s.locks.Acquire(lockCtx, carID)
	if err != nil {
		cancel()
		log.Warn().Err(err).Str("car_id", carID).Msg("timed out waiting for car admission lock")

		return nil, failure.Conflict("car is busy with another booking attempt, please retry") //nolint:wrapcheck
	}

	return func() {
		release()
		cancel()
	}, nil
}

func (s *serviceImpl) requireOwnerOrAdmin(ctx context.Context, ownerID string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if user == ownerID || role == constant.RoleAdmin || role == constant.RoleSuperAdmin {
		return nil
	}

	return failure.ResourceRestrictedError //nolint:wrapcheck
}

func (s *serviceImpl) afterCommit(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if s.kafka == nil {
			return
		}

		message := kafka.Message{
			Key:   booking.ID,
			Value: booking,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingCreated, message); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
		}
	}()
}
