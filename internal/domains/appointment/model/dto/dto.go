package dto

import (
	"salon/internal/domains/appointment/model"
	"salon/shared/interval"
	"salon/shared/timezone"
)

// ServicePayload mirrors one catalog service as the booking client sends
// it. Duration is a pointer because the client may omit it; a missing or
// non-positive duration rejects the whole booking.
type ServicePayload struct {
	ID          string   `json:"id"          validate:"required"`
	Title       string   `json:"title"       validate:"required"`
	Price       float64  `json:"price"       validate:"gte=0"`
	Duration    *int     `json:"duration"`
	Description string   `json:"description" validate:"omitempty"`
	Image       string   `json:"image"       validate:"omitempty"`
	Images      []string `json:"images"      validate:"omitempty"`
	Reduction   string   `json:"reduction"   validate:"omitempty"`
	Extras      string   `json:"extras"      validate:"omitempty"`
}

func (s *ServicePayload) ToModel() model.ServiceLineItem {
	duration := 0
	if s.Duration != nil {
		duration = *s.Duration
	}

	return model.ServiceLineItem{
		ServiceID:       s.ID,
		Title:           s.Title,
		Price:           s.Price,
		DurationMinutes: duration,
		Description:     s.Description,
		Image:           s.Image,
		Reduction:       s.Reduction,
	}
}

// DateInfo is the client's own rendering of the requested slot. Only the
// echoed duration is consulted, and solely to cross-check the sum of the
// service durations.
type DateInfo struct {
	Date      string `json:"date"      validate:"omitempty"`
	StartTime string `json:"startTime" validate:"omitempty"`
	EndTime   string `json:"endTime"   validate:"omitempty"`
	Duration  *int   `json:"duration"`
}

type BookingRequest struct {
	Email      string           `json:"email"      validate:"required,email,max=100"`
	Phone      string           `json:"phone"      validate:"required,max=30"`
	Date       string           `json:"date"       validate:"required"`
	Time       string           `json:"time"       validate:"required"`
	Firstname  string           `json:"firstname"  validate:"required,max=100"`
	Lastname   string           `json:"lastname"   validate:"required,max=100"`
	AgbChecked bool             `json:"agbChecked"`
	Bemerkung  string           `json:"bemerkung"  validate:"omitempty,max=2000"`
	DateInfo   DateInfo         `json:"dateInfo"`
	Services   []ServicePayload `json:"services"   validate:"required,min=1,dive"`
}

func (c *BookingRequest) ToModel(confirmationCode string, iv interval.Interval) model.Appointment {
	return model.Appointment{
		ConfirmationCode: confirmationCode,
		CustomerEmail:    c.Email,
		CustomerPhone:    c.Phone,
		FirstName:        c.Firstname,
		LastName:         c.Lastname,
		StartTime:        iv.Start,
		EndTime:          iv.End,
		TermsAccepted:    c.AgbChecked,
		Note:             c.Bemerkung,
		CreatedAt:        timezone.Now(),
	}
}

func (c *BookingRequest) LineItems() []model.ServiceLineItem {
	items := make([]model.ServiceLineItem, len(c.Services))
	for i := range c.Services {
		items[i] = c.Services[i].ToModel()
	}

	return items
}

// BookingConfirmation is the service-level result of a successful submit.
type BookingConfirmation struct {
	ConfirmationCode     string
	TotalDurationMinutes int
	TotalPrice           float64
}

// BookingCreatedResponse is the exact wire shape the booking client expects
// back from a successful reservation.
type BookingCreatedResponse struct {
	ID string `json:"id"`
}

// SlotResponse is one occupied slot in the availability view. It carries no
// personal data.
type SlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (r *SlotResponse) FromModel(appointment model.Appointment) {
	iv := appointment.Interval()

	r.Date = iv.Date()
	r.StartTime = iv.StartClock()
	r.EndTime = iv.EndClock()
}
