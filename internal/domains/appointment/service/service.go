package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/appointment/model/dto"
	"salon/internal/domains/appointment/repository"
	"salon/internal/notifier"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/interval"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheBookedSlots = "appointment:slots"
)

type Appointment interface {
	// Submit reserves the requested slot. It returns the confirmation
	// code on success, or a bad-request failure when the slot is taken,
	// the terms are unaccepted, or the request is malformed.
	Submit(ctx context.Context, req dto.BookingRequest) (dto.BookingConfirmation, error)
	// Cancel removes the appointment identified by the confirmation
	// code and frees its slot. Unknown or already-cancelled codes yield
	// a not-found failure.
	Cancel(ctx context.Context, confirmationCode string) error
	// ListSlots returns the occupied slots in booking order, rendered
	// in the client wire format. The view carries no personal data.
	ListSlots(ctx context.Context) ([]dto.SlotResponse, error)
}

type serviceImpl struct {
	repo       repository.Appointment
	dispatcher notifier.Dispatcher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Appointment, dispatcher notifier.Dispatcher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Appointment {
	return &serviceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.BookingRequest) (res dto.BookingConfirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Checked before touching the store so a rejected booking never
	// competes for the slot.
	if !req.AgbChecked {
		return res, failure.TermsNotAccepted
	}

	totalDuration, err := totalDurationMinutes(req.Services)
	if err != nil {
		return res, err
	}

	if req.DateInfo.Duration != nil && *req.DateInfo.Duration != totalDuration {
		log.Warn().
			Int("clientDuration", *req.DateInfo.Duration).
			Int("serviceDuration", totalDuration).
			Msg("client-echoed duration disagrees with the service durations, using the service sum")
	}

	iv, err := interval.FromDateAndClock(req.Date, req.Time, totalDuration)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Str("time", req.Time).Msg("failed to parse requested slot")

		return res, err
	}

	confirmationCode := uuid.NewString()
	appointment := req.ToModel(confirmationCode, iv)
	items := req.LineItems()

	id, err := s.repo.Reserve(ctx, appointment, items)
	if errors.Is(err, repository.ErrSlotTaken) {
		log.Info().Str("date", req.Date).Str("time", req.Time).Msg("requested slot is already taken")

		return res, failure.SlotUnavailable
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to reserve appointment")

		return res, fmt.Errorf("failed to reserve appointment: %w", err)
	}

	appointment.ID = id

	// The reservation is committed; notification failures are consumed
	// inside the dispatcher and cannot undo it.
	s.dispatcher.BookingConfirmed(ctx, appointment, items)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheBookedSlots)
	}()

	res = dto.BookingConfirmation{
		ConfirmationCode:     confirmationCode,
		TotalDurationMinutes: totalDuration,
		TotalPrice:           totalPrice(items),
	}

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, confirmationCode string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.CancelByCode(ctx, confirmationCode)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info().Str("confirmationCode", confirmationCode).Msg("no active appointment for confirmation code")

		return failure.AppointmentNotFound
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to cancel appointment")

		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	s.dispatcher.BookingCancelled(ctx, removed)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheBookedSlots)
	}()

	return nil
}

func (s *serviceImpl) ListSlots(ctx context.Context) (res []dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheBookedSlots, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booked slots")

		return res, nil
	}

	appointments, err := s.repo.ListActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list booked slots")

		return nil, fmt.Errorf("failed to list booked slots: %w", err)
	}

	// The client expects an array even when nothing is booked.
	res = make([]dto.SlotResponse, len(appointments))
	for i := range appointments {
		res[i].FromModel(appointments[i])
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booked slots to cache")
		}
	}()

	return res, nil
}

// totalDurationMinutes sums the service durations. Every service must carry
// a positive duration or the slot length would be undefined.
func totalDurationMinutes(services []dto.ServicePayload) (int, error) {
	var total int

	for _, service := range services {
		if service.Duration == nil || *service.Duration <= 0 {
			return 0, failure.BadRequestFromString(fmt.Sprintf("service %q has no usable duration", service.Title)) // nolint:wrapcheck
		}

		total += *service.Duration
	}

	if total <= 0 {
		return 0, failure.BadRequestFromString("booking must contain at least one service with a duration") // nolint:wrapcheck
	}

	return total, nil
}

func totalPrice(items []model.ServiceLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}

	return total
}
