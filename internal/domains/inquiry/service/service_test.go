package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "salon/infras/otel/mocks"
	"salon/internal/domains/inquiry/model"
	"salon/internal/domains/inquiry/model/dto"
	"salon/internal/domains/inquiry/service"
	notifierMocks "salon/internal/notifier/mocks"
)

func TestInquiryService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatcher := notifierMocks.NewMockDispatcher(ctrl)
	svc := service.New(mockDispatcher, otelMocks.NewOtel())

	req := dto.InquiryRequest{
		Firstname: "Lea",
		Email:     "lea@example.com",
		Phone:     "+41 78 111 22 33",
		Bemerkung: "Bieten Sie auch Nail Art an?",
	}

	mockDispatcher.EXPECT().
		InquiryReceived(gomock.Any(), model.Inquiry{
			Firstname: "Lea",
			Email:     "lea@example.com",
			Phone:     "+41 78 111 22 33",
			Message:   "Bieten Sie auch Nail Art an?",
		})

	err := svc.Submit(context.Background(), req)

	assert.NoError(t, err)
}
