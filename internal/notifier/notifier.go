// Package notifier turns booking lifecycle changes into side effects: email
// to the business and the customer, and events on the bus. Every delivery
// failure is logged and consumed here; a booking that committed stays booked
// no matter what the mail server thinks about it.
package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"salon/config"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/infras/smtp"
	appointmentModel "salon/internal/domains/appointment/model"
	inquiryModel "salon/internal/domains/inquiry/model"
	"salon/shared/constant"
	"salon/shared/ics"
	"salon/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	subjectBookingConfirmed = "Termin erfolgreich gebucht"
	subjectBookingCancelled = "Termin erfolgreich abgesagt"
)

// Dispatcher fans one booking lifecycle change out to every interested
// party. Methods return nothing: by the time a dispatch happens the store
// transaction has committed, and notification failures must not undo it.
type Dispatcher interface {
	BookingConfirmed(ctx context.Context, appointment appointmentModel.Appointment, items []appointmentModel.ServiceLineItem)
	BookingCancelled(ctx context.Context, appointment appointmentModel.Appointment)
	InquiryReceived(ctx context.Context, inquiry inquiryModel.Inquiry)
}

type dispatcherImpl struct {
	config   *config.Config
	mailer   smtp.Mailer
	producer kafka.Producer
	otel     otel.Otel
}

func New(config *config.Config, mailer smtp.Mailer, producer kafka.Producer, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		config:   config,
		mailer:   mailer,
		producer: producer,
		otel:     otel,
	}
}

type bookingEvent struct {
	Event            string `json:"event"`
	ConfirmationCode string `json:"confirmationCode"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
}

func (d *dispatcherImpl) BookingConfirmed(ctx context.Context, appointment appointmentModel.Appointment, items []appointmentModel.ServiceLineItem) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, "notifier.BookingConfirmed")
	defer scope.End()

	body := d.confirmationBody(appointment, items)
	attachment := d.calendarAttachment(appointment, items)

	d.sendMail(ctx, subjectBookingConfirmed, d.config.SMTP.BusinessTo, body, attachment)
	d.sendMail(ctx, subjectBookingConfirmed, appointment.CustomerEmail, body, attachment)

	d.publish(ctx, constant.KafkaEventBookingConfirmed, appointment)
}

func (d *dispatcherImpl) BookingCancelled(ctx context.Context, appointment appointmentModel.Appointment) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, "notifier.BookingCancelled")
	defer scope.End()

	iv := appointment.Interval()

	body := fmt.Sprintf("Buchung für %s %s vom %s, %s erfolgreich abgesagt.",
		appointment.FirstName, appointment.LastName, iv.Date(), iv.StartClock())

	d.sendMail(ctx, subjectBookingCancelled, d.config.SMTP.BusinessTo, body, nil)
	d.sendMail(ctx, subjectBookingCancelled, appointment.CustomerEmail, body, nil)

	d.publish(ctx, constant.KafkaEventBookingCancelled, appointment)
}

func (d *dispatcherImpl) InquiryReceived(ctx context.Context, inquiry inquiryModel.Inquiry) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, "notifier.InquiryReceived")
	defer scope.End()

	subject := fmt.Sprintf("Anliegen von %s", inquiry.Firstname)
	body := fmt.Sprintf(
		"Anliegen von %s \n"+
			"Email: %s \n"+
			"Telefon-Nr: %s \n"+
			"Anliegen: %s",
		inquiry.Firstname, inquiry.Email, inquiry.Phone, inquiry.Message)

	d.sendMail(ctx, subject, d.config.SMTP.BusinessTo, body, nil)
}

func (d *dispatcherImpl) confirmationBody(appointment appointmentModel.Appointment, items []appointmentModel.ServiceLineItem) string {
	iv := appointment.Interval()
	totalMinutes := int(iv.Duration().Minutes())

	return fmt.Sprintf(
		"Ihr Termin wurde erfolgreich gebucht.\n\n"+
			"Termin ID: %s\n\n"+
			"Buchung für %s %s\n"+
			"E-Mail: %s\n"+
			"Telefon: %s\n\n"+
			"Datum: %s, Zeit: %s\n"+
			"Ungefähre Dauer: %dh %dmin\n\n"+
			"Services: %s\n"+
			"Ungefährer Preis: CHF %s\n\n"+
			"Ort: %s\n\n"+
			"Stornierung: %s",
		appointment.ConfirmationCode,
		appointment.FirstName, appointment.LastName,
		appointment.CustomerEmail,
		appointment.CustomerPhone,
		iv.Date(), iv.StartClock(),
		totalMinutes/constant.MinutesPerHour, totalMinutes%constant.MinutesPerHour,
		serviceList(items, "Minuten"),
		formatPrice(totalPrice(items)),
		d.config.Salon.Location,
		d.config.Salon.CancellationNote,
	)
}

func (d *dispatcherImpl) calendarAttachment(appointment appointmentModel.Appointment, items []appointmentModel.ServiceLineItem) []byte {
	iv := appointment.Interval()

	titles := make([]string, len(items))
	for i := range items {
		titles[i] = items[i].Title
	}

	description := fmt.Sprintf(
		"Termin ID: %s\n"+
			"Buchung für %s %s\n"+
			"E-Mail: %s\n"+
			"Telefon: %s\n"+
			"Datum: %s, Zeit: %s\n"+
			"Services: %s\n"+
			"Ungefährer Preis: CHF %s\n"+
			"Stornierung: %s",
		appointment.ConfirmationCode,
		appointment.FirstName, appointment.LastName,
		appointment.CustomerEmail,
		appointment.CustomerPhone,
		iv.Date(), iv.StartClock(),
		serviceList(items, "Min"),
		formatPrice(totalPrice(items)),
		d.config.Salon.CancellationNote,
	)

	return ics.Encode(ics.Event{
		UID:         appointment.ConfirmationCode + "@" + d.config.Salon.CalendarDomain,
		Timestamp:   timezone.Now(),
		Start:       appointment.StartTime,
		Duration:    iv.Duration(),
		Summary:     "Booking: " + strings.Join(titles, ", "),
		Description: description,
		Location:    d.config.Salon.Location,
	})
}

func (d *dispatcherImpl) sendMail(ctx context.Context, subject, recipient, body string, attachment []byte) {
	if err := d.mailer.Send(ctx, subject, recipient, body, attachment); err != nil {
		log.Error().Err(err).
			Str("recipient", recipient).
			Str("subject", subject).
			Msg("Notification mail failed, booking state is unaffected")
	}
}

func (d *dispatcherImpl) publish(ctx context.Context, event string, appointment appointmentModel.Appointment) {
	message := kafka.Message{
		Key: appointment.ConfirmationCode,
		Value: bookingEvent{
			Event:            event,
			ConfirmationCode: appointment.ConfirmationCode,
			StartTime:        appointment.StartTime.UTC().Format(constant.TimestampFormat),
			EndTime:          appointment.EndTime.UTC().Format(constant.TimestampFormat),
		},
	}

	if err := d.producer.SendMessages(ctx, d.config.Kafka.Topic, message); err != nil {
		log.Error().Err(err).
			Str("event", event).
			Str("confirmationCode", appointment.ConfirmationCode).
			Msg("Failed to publish booking event")
	}
}

func serviceList(items []appointmentModel.ServiceLineItem, unit string) string {
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = fmt.Sprintf("%s (%d %s)", item.Title, item.DurationMinutes, unit)
	}

	return strings.Join(entries, ", ")
}

func totalPrice(items []appointmentModel.ServiceLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}

	return total
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
