package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salon/config"
	otelMocks "salon/infras/otel/mocks"
	appointmentMocks "salon/internal/domains/appointment/mocks"
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/appointment/model/dto"
	"salon/internal/domains/appointment/repository"
	"salon/internal/domains/appointment/service"
	notifierMocks "salon/internal/notifier/mocks"
	cacheMocks "salon/shared/cache/mocks"
	"salon/shared/failure"
	"salon/shared/timezone"
)

func intPtr(v int) *int {
	return &v
}

func validBookingRequest() dto.BookingRequest {
	return dto.BookingRequest{
		Email:      "kunde@example.com",
		Phone:      "+41 79 000 00 00",
		Date:       "31.01.2025",
		Time:       "12:00",
		Firstname:  "Anna",
		Lastname:   "Muster",
		AgbChecked: true,
		DateInfo:   dto.DateInfo{Date: "31.01.2025", StartTime: "12:00", EndTime: "13:30", Duration: intPtr(90)},
		Services: []dto.ServicePayload{
			{ID: "svc-1", Title: "Manicure", Price: 55, Duration: intPtr(60)},
			{ID: "svc-2", Title: "Gel Removal", Price: 25.5, Duration: intPtr(30)},
		},
	}
}

func TestAppointmentService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := notifierMocks.NewMockDispatcher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// slot cache invalidation runs detached from the request
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockDispatcher, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		req        func() dto.BookingRequest
		setupMock  func()
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "successful reservation notifies and returns totals",
			req:  validBookingRequest,
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, appointment model.Appointment, items []model.ServiceLineItem) (int64, error) {
						assert.Equal(t, 90*time.Minute, appointment.EndTime.Sub(appointment.StartTime))
						assert.Len(t, items, 2)
						return 42, nil
					})
				mockDispatcher.EXPECT().
					BookingConfirmed(gomock.Any(), gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, appointment model.Appointment, _ []model.ServiceLineItem) {
						assert.EqualValues(t, 42, appointment.ID)
						assert.NotEmpty(t, appointment.ConfirmationCode)
					})
			},
		},
		{
			name: "unaccepted terms are rejected before the store is touched",
			req: func() dto.BookingRequest {
				req := validBookingRequest()
				req.AgbChecked = false
				return req
			},
			setupMock: func() {},
			wantErr:   failure.TermsNotAccepted,
		},
		{
			name: "service without duration is rejected",
			req: func() dto.BookingRequest {
				req := validBookingRequest()
				req.Services[1].Duration = nil
				return req
			},
			setupMock:  func() {},
			wantAnyErr: true,
		},
		{
			name: "malformed date is rejected",
			req: func() dto.BookingRequest {
				req := validBookingRequest()
				req.Date = "2025-01-31"
				return req
			},
			setupMock:  func() {},
			wantAnyErr: true,
		},
		{
			name: "occupied slot maps to the slot-unavailable failure",
			req:  validBookingRequest,
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrSlotTaken)
			},
			wantErr: failure.SlotUnavailable,
		},
		{
			name: "storage error propagates without notification",
			req:  validBookingRequest,
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Submit(context.Background(), tt.req())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ConfirmationCode)
				assert.Equal(t, 90, res.TotalDurationMinutes)
				assert.InDelta(t, 80.5, res.TotalPrice, 0.0001)
			}
		})
	}
}

func TestAppointmentService_Submit_ErrorsTakeNoSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := notifierMocks.NewMockDispatcher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockDispatcher, cfg, mockCache, mockOtel)

	// none of these may reach the repository or the dispatcher
	rejected := []func() dto.BookingRequest{
		func() dto.BookingRequest {
			req := validBookingRequest()
			req.AgbChecked = false
			return req
		},
		func() dto.BookingRequest {
			req := validBookingRequest()
			req.Services[0].Duration = intPtr(0)
			return req
		},
		func() dto.BookingRequest {
			req := validBookingRequest()
			req.Time = "noon"
			return req
		},
	}

	for _, build := range rejected {
		_, err := svc.Submit(context.Background(), build())
		assert.Error(t, err)
	}
}

func TestAppointmentService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := notifierMocks.NewMockDispatcher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockDispatcher, cfg, mockCache, mockOtel)

	removed := model.Appointment{
		ID:               42,
		ConfirmationCode: "code-1",
		CustomerEmail:    "kunde@example.com",
		FirstName:        "Anna",
		LastName:         "Muster",
		StartTime:        time.Date(2025, 1, 31, 12, 0, 0, 0, timezone.GetLocation()),
		EndTime:          time.Date(2025, 1, 31, 13, 30, 0, 0, timezone.GetLocation()),
	}

	tests := []struct {
		name      string
		code      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful cancellation dispatches to the removed booking",
			code: "code-1",
			setupMock: func() {
				mockRepo.EXPECT().
					CancelByCode(gomock.Any(), "code-1").
					Return(removed, nil)
				mockDispatcher.EXPECT().
					BookingCancelled(gomock.Any(), removed)
			},
		},
		{
			name: "unknown code maps to not found",
			code: "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					CancelByCode(gomock.Any(), "missing").
					Return(model.Appointment{}, repository.ErrNotFound)
			},
			wantErr: failure.AppointmentNotFound,
		},
		{
			name: "second cancel of the same code maps to not found",
			code: "code-1",
			setupMock: func() {
				mockRepo.EXPECT().
					CancelByCode(gomock.Any(), "code-1").
					Return(model.Appointment{}, repository.ErrNotFound)
			},
			wantErr: failure.AppointmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_ListSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockDispatcher := notifierMocks.NewMockDispatcher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockDispatcher, cfg, mockCache, mockOtel)

	t.Run("renders occupied slots in the wire format without personal data", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			ListActive(gomock.Any()).
			Return([]model.Appointment{
				{
					StartTime: time.Date(2025, 1, 31, 12, 0, 0, 0, timezone.GetLocation()),
					EndTime:   time.Date(2025, 1, 31, 13, 30, 0, 0, timezone.GetLocation()),
				},
			}, nil)

		res, err := svc.ListSlots(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []dto.SlotResponse{
			{Date: "31.01.2025", StartTime: "12:00", EndTime: "13:30"},
		}, res)
	})

	t.Run("empty store yields an empty array, not null", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			ListActive(gomock.Any()).
			Return(nil, nil)

		res, err := svc.ListSlots(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		cached := []dto.SlotResponse{{Date: "01.02.2025", StartTime: "09:00", EndTime: "10:00"}}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				target := value.(*[]dto.SlotResponse)
				*target = cached
				return nil
			})

		res, err := svc.ListSlots(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			ListActive(gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.ListSlots(context.Background())

		assert.Error(t, err)
	})
}
