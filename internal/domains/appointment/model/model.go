package model

import (
	"salon/shared/interval"
	"time"
)

const (
	TableName        = "appointments"
	ServiceTableName = "appointment_services"
	EntityName       = "appointment"

	FieldID               = "id"
	FieldConfirmationCode = "confirmation_code"
	FieldCustomerEmail    = "customer_email"
	FieldCustomerPhone    = "customer_phone"
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldStartTime        = "start_time"
	FieldEndTime          = "end_time"
	FieldTermsAccepted    = "terms_accepted"
	FieldNote             = "note"
	FieldCreatedAt        = "created_at"
)

// Appointment is the authoritative booking record. The set of persisted
// rows is pairwise non-overlapping on [StartTime, EndTime); the repository
// enforces that inside the reserve transaction.
type Appointment struct {
	ID               int64     `db:"id"`
	ConfirmationCode string    `db:"confirmation_code"`
	CustomerEmail    string    `db:"customer_email"`
	CustomerPhone    string    `db:"customer_phone"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	StartTime        time.Time `db:"start_time"`
	EndTime          time.Time `db:"end_time"`
	TermsAccepted    bool      `db:"terms_accepted"`
	Note             string    `db:"note"`
	CreatedAt        time.Time `db:"created_at"`
}

// Interval returns the half-open time range the appointment occupies.
func (a Appointment) Interval() interval.Interval {
	return interval.Interval{Start: a.StartTime, End: a.EndTime}
}

// ServiceLineItem is an immutable snapshot of a catalog service at booking
// time. The catalog may change later; the booking keeps what was priced.
type ServiceLineItem struct {
	ID              int64   `db:"id"`
	AppointmentID   int64   `db:"appointment_id"`
	ServiceID       string  `db:"service_id"`
	Title           string  `db:"title"`
	Price           float64 `db:"price"`
	DurationMinutes int     `db:"duration_minutes"`
	Description     string  `db:"description"`
	Image           string  `db:"image"`
	Reduction       string  `db:"reduction"`
}
