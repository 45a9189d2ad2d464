package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"carrent/infras/otel"
	"carrent/infras/postgres"
	"carrent/internal/domains/booking/admission"
	"carrent/internal/domains/booking/model"
	"carrent/shared/constant"
	gDto "carrent/shared/dto"
	"carrent/shared/logger"
	gRepo "carrent/shared/repository"
)

// ErrUniquenessViolation marks an insert or update rejected by one of
// the booking table's unique constraints (reservation number, or the
// exact car/date-range guard). Under the per-car admission lock this
// only fires when a concurrent writer slipped past the overlap check,
// so the service maps it to a retryable conflict.
var ErrUniquenessViolation = errors.New("booking violates a uniqueness constraint")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListRanges(ctx context.Context, carID string) ([]admission.BookedRange, error)
	ReservationCodes(ctx context.Context) (map[string]struct{}, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	err := repo.Repository.Insert(ctx, booking)
	if isUniqueViolation(err) {
		return ErrUniquenessViolation
	}

	return err //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	err := repo.Repository.Update(ctx, req, filter)
	if isUniqueViolation(err) {
		return ErrUniquenessViolation
	}

	return err //nolint:wrapcheck
}

// ListRanges reads every persisted date range for one car, the state
// the overlap check runs against. Must be called with the car's
// admission lock held.
func (repo *repositoryImpl) ListRanges(ctx context.Context, carID string) ([]admission.BookedRange, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListRanges")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s WHERE %s = $1",
		model.FieldID, model.FieldStartDate, model.FieldEndDate, model.TableName, model.FieldCarID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []struct {
		ID        string    `db:"id"`
		StartDate time.Time `db:"start_date"`
		EndDate   time.Time `db:"end_date"`
	}

	if err := repo.db.Read.SelectContext(ctx, &rows, query, carID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list booked ranges (%s): %w", model.EntityName, err)
	}

	ranges := make([]admission.BookedRange, len(rows))
	for i, row := range rows {
		ranges[i] = admission.BookedRange{
			BookingID: row.ID,
			Start:     row.StartDate,
			End:       row.EndDate,
		}
	}

	return ranges, nil
}

// ReservationCodes returns the set of codes currently persisted. Codes
// of deleted bookings drop out of the set and become reusable.
func (repo *repositoryImpl) ReservationCodes(ctx context.Context) (map[string]struct{}, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ReservationCodes")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s", model.FieldReservationNumber, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var codes []string

	if err := repo.db.Read.SelectContext(ctx, &codes, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list reservation codes (%s): %w", model.EntityName, err)
	}

	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}

	return set, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
