package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/appointment/model"
	"salon/shared/constant"

	"github.com/rs/zerolog/log"
)

// schedulingLockKey serializes all reserve transactions via
// pg_advisory_xact_lock. There is a single bookable resource (the salon),
// so one key is sufficient; with it held, the NOT EXISTS check and the
// insert below commit as one atomic decision even under READ COMMITTED.
const schedulingLockKey = int64(824001)

const reserveQuery = `
INSERT INTO appointments
	(confirmation_code, customer_email, customer_phone, first_name, last_name, start_time, end_time, terms_accepted, note, created_at)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
WHERE NOT EXISTS (
	SELECT 1 FROM appointments WHERE start_time < $7 AND end_time > $6
)
RETURNING id`

const insertLineItemsQuery = `
INSERT INTO appointment_services
	(appointment_id, service_id, title, price, duration_minutes, description, image, reduction)
VALUES
	(:appointment_id, :service_id, :title, :price, :duration_minutes, :description, :image, :reduction)`

const cancelQuery = `
DELETE FROM appointments
WHERE confirmation_code = $1
RETURNING id, confirmation_code, customer_email, customer_phone, first_name, last_name, start_time, end_time, terms_accepted, note, created_at`

const listActiveQuery = `
SELECT start_time, end_time FROM appointments ORDER BY start_time ASC`

const listLineItemsQuery = `
SELECT id, appointment_id, service_id, title, price, duration_minutes, description, image, reduction
FROM appointment_services
WHERE appointment_id = $1
ORDER BY id ASC`

// ErrSlotTaken is returned by Reserve when an active appointment already
// occupies part of the requested range. The store is unchanged in that case.
var ErrSlotTaken = errors.New("requested time range overlaps an active appointment")

// ErrNotFound is returned by CancelByCode when no active appointment matches
// the confirmation code, including a second cancel of the same code.
var ErrNotFound = errors.New("no active appointment for confirmation code")

type Appointment interface {
	// Reserve inserts the appointment and its line items in one
	// transaction iff no active appointment overlaps its interval.
	// It returns the store-assigned id, or ErrSlotTaken with no
	// partial write on conflict.
	Reserve(ctx context.Context, appointment model.Appointment, items []model.ServiceLineItem) (int64, error)
	// CancelByCode atomically removes the matching appointment and
	// returns the removed record; line items go with it. A missing or
	// already-cancelled code yields ErrNotFound.
	CancelByCode(ctx context.Context, confirmationCode string) (model.Appointment, error)
	// ListActive returns the occupied intervals of all active
	// appointments, ordered by start time. Served from the read pool.
	ListActive(ctx context.Context) ([]model.Appointment, error)
	// ListLineItems returns the service snapshots of one appointment.
	ListLineItems(ctx context.Context, appointmentID int64) ([]model.ServiceLineItem, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Reserve(ctx context.Context, appointment model.Appointment, items []model.ServiceLineItem) (id int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin reserve transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				log.Error().Err(rollbackErr).Msg("failed to roll back reserve transaction")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, schedulingLockKey); err != nil {
		return 0, fmt.Errorf("failed to acquire scheduling lock: %w", err)
	}

	err = tx.QueryRowxContext(ctx, reserveQuery,
		appointment.ConfirmationCode,
		appointment.CustomerEmail,
		appointment.CustomerPhone,
		appointment.FirstName,
		appointment.LastName,
		appointment.StartTime,
		appointment.EndTime,
		appointment.TermsAccepted,
		appointment.Note,
		appointment.CreatedAt,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		// the conditional insert matched an overlapping row; nothing was written
		err = ErrSlotTaken

		return 0, err
	}

	if err != nil {
		return 0, fmt.Errorf("failed to reserve appointment: %w", err)
	}

	for i := range items {
		items[i].AppointmentID = id
	}

	if len(items) > 0 {
		if _, err = tx.NamedExecContext(ctx, insertLineItemsQuery, items); err != nil {
			return 0, fmt.Errorf("failed to insert appointment services: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit reserve transaction: %w", err)
	}

	return id, nil
}

func (repo *repositoryImpl) CancelByCode(ctx context.Context, confirmationCode string) (removed model.Appointment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CancelByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = repo.db.Write.GetContext(ctx, &removed, cancelQuery, confirmationCode)

	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound

		return model.Appointment{}, err
	}

	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	return removed, nil
}

func (repo *repositoryImpl) ListActive(ctx context.Context) (appointments []model.Appointment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, listActiveQuery)

	if err = repo.db.Read.SelectContext(ctx, &appointments, listActiveQuery); err != nil {
		return nil, fmt.Errorf("failed to list active appointments: %w", err)
	}

	return appointments, nil
}

func (repo *repositoryImpl) ListLineItems(ctx context.Context, appointmentID int64) (items []model.ServiceLineItem, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ListLineItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.db.Read.SelectContext(ctx, &items, listLineItemsQuery, appointmentID); err != nil {
		return nil, fmt.Errorf("failed to list appointment services: %w", err)
	}

	return items, nil
}
