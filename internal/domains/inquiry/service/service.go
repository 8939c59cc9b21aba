package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"salon/infras/otel"
	"salon/internal/domains/inquiry/model/dto"
	"salon/internal/notifier"
	"salon/shared/constant"
)

type Inquiry interface {
	// Submit forwards the inquiry to the business mailbox. Delivery is
	// best effort; the caller always gets a success once the request is
	// well-formed.
	Submit(ctx context.Context, req dto.InquiryRequest) error
}

type serviceImpl struct {
	dispatcher notifier.Dispatcher
	otel       otel.Otel
}

func New(dispatcher notifier.Dispatcher, otel otel.Otel) Inquiry {
	return &serviceImpl{
		dispatcher: dispatcher,
		otel:       otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.InquiryRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitInquiry")
	defer scope.End()

	s.dispatcher.InquiryReceived(ctx, req.ToModel())

	return nil
}
