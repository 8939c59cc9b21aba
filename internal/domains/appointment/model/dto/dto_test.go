package dto_test

import (
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/appointment/model/dto"
	"salon/shared/interval"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func sampleRequest() dto.BookingRequest {
	return dto.BookingRequest{
		Email:      "anna@example.com",
		Phone:      "+41799999999",
		Date:       "01.06.2025",
		Time:       "10:00",
		Firstname:  "Anna",
		Lastname:   "Muster",
		AgbChecked: true,
		Bemerkung:  "bitte Fensterplatz",
		Services: []dto.ServicePayload{
			{ID: "svc-1", Title: "Manicure", Price: 55, Duration: intPtr(60)},
			{ID: "svc-2", Title: "Pedicure", Price: 40, Duration: intPtr(30)},
		},
	}
}

func TestBookingRequest_ToModel(t *testing.T) {
	req := sampleRequest()

	iv, err := interval.FromDateAndClock(req.Date, req.Time, 90)
	assert.NoError(t, err)

	appointment := req.ToModel("code-123", iv)

	assert.Equal(t, "code-123", appointment.ConfirmationCode)
	assert.Equal(t, "anna@example.com", appointment.CustomerEmail)
	assert.Equal(t, "+41799999999", appointment.CustomerPhone)
	assert.Equal(t, "Anna", appointment.FirstName)
	assert.Equal(t, "Muster", appointment.LastName)
	assert.Equal(t, iv.Start, appointment.StartTime)
	assert.Equal(t, iv.End, appointment.EndTime)
	assert.True(t, appointment.TermsAccepted)
	assert.Equal(t, "bitte Fensterplatz", appointment.Note)
	assert.False(t, appointment.CreatedAt.IsZero())
}

func TestBookingRequest_LineItems(t *testing.T) {
	req := sampleRequest()

	items := req.LineItems()

	assert.Len(t, items, 2)
	assert.Equal(t, "svc-1", items[0].ServiceID)
	assert.Equal(t, "Manicure", items[0].Title)
	assert.Equal(t, 60, items[0].DurationMinutes)
	assert.Equal(t, 30, items[1].DurationMinutes)
}

func TestServicePayload_ToModel_MissingDuration(t *testing.T) {
	payload := dto.ServicePayload{ID: "svc-3", Title: "Beratung", Price: 0}

	item := payload.ToModel()

	assert.Equal(t, 0, item.DurationMinutes)
}

func TestSlotResponse_FromModel(t *testing.T) {
	iv, err := interval.FromDateAndClock("01.06.2025", "10:00", 90)
	assert.NoError(t, err)

	appointment := model.Appointment{
		StartTime: iv.Start,
		EndTime:   iv.End,
		CreatedAt: time.Now(),
	}

	res := dto.SlotResponse{}
	res.FromModel(appointment)

	assert.Equal(t, dto.SlotResponse{
		Date:      "01.06.2025",
		StartTime: "10:00",
		EndTime:   "11:30",
	}, res)
}
