package notifier_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"salon/config"
	"salon/infras/kafka"
	kafkaMocks "salon/infras/kafka/mocks"
	otelMocks "salon/infras/otel/mocks"
	smtpMocks "salon/infras/smtp/mocks"
	appointmentModel "salon/internal/domains/appointment/model"
	inquiryModel "salon/internal/domains/inquiry/model"
	"salon/internal/notifier"
	"salon/shared/timezone"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type dispatcherSuite struct {
	dispatcher notifier.Dispatcher
	mailer     *smtpMocks.MockMailer
	producer   *kafkaMocks.MockProducer
	config     *config.Config
}

func newDispatcherSuite(t *testing.T) *dispatcherSuite {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.SMTP.BusinessTo = "salon@example.com"
	cfg.Salon.Location = "Kirchgasse 3, 9500 Wil, Schweiz"
	cfg.Salon.CancellationNote = "Bis spätestens 2 Tage vorher telefonisch möglich: +41 79 968 11 84"
	cfg.Salon.CalendarDomain = "example.com"
	cfg.Kafka.Topic = "salon.bookings"

	mailer := smtpMocks.NewMockMailer(ctrl)
	producer := kafkaMocks.NewMockProducer(ctrl)

	return &dispatcherSuite{
		dispatcher: notifier.New(cfg, mailer, producer, otelMocks.NewOtel()),
		mailer:     mailer,
		producer:   producer,
		config:     cfg,
	}
}

func fixtureAppointment() (appointmentModel.Appointment, []appointmentModel.ServiceLineItem) {
	start := time.Date(2025, 1, 31, 12, 0, 0, 0, timezone.GetLocation())

	appointment := appointmentModel.Appointment{
		ID:               7,
		ConfirmationCode: "3f2c6a1e-0000-4000-8000-000000000001",
		CustomerEmail:    "kunde@example.com",
		CustomerPhone:    "+41 79 000 00 00",
		FirstName:        "Anna",
		LastName:         "Muster",
		StartTime:        start,
		EndTime:          start.Add(90 * time.Minute),
		TermsAccepted:    true,
	}

	items := []appointmentModel.ServiceLineItem{
		{Title: "Manicure", Price: 55, DurationMinutes: 60},
		{Title: "Gel Removal", Price: 25.5, DurationMinutes: 30},
	}

	return appointment, items
}

func TestBookingConfirmed(t *testing.T) {
	t.Run("sends mail to business and customer with calendar attachment", func(t *testing.T) {
		suite := newDispatcherSuite(t)
		appointment, items := fixtureAppointment()

		var bodies []string
		var attachments [][]byte

		suite.mailer.EXPECT().
			Send(gomock.Any(), "Termin erfolgreich gebucht", suite.config.SMTP.BusinessTo, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string, attachment []byte) error {
				bodies = append(bodies, body)
				attachments = append(attachments, attachment)
				return nil
			})
		suite.mailer.EXPECT().
			Send(gomock.Any(), "Termin erfolgreich gebucht", appointment.CustomerEmail, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string, attachment []byte) error {
				bodies = append(bodies, body)
				attachments = append(attachments, attachment)
				return nil
			})
		suite.producer.EXPECT().
			SendMessages(gomock.Any(), suite.config.Kafka.Topic, gomock.Any()).
			Return(nil)

		suite.dispatcher.BookingConfirmed(context.Background(), appointment, items)

		assert.Len(t, bodies, 2)
		assert.Equal(t, bodies[0], bodies[1])
		assert.Contains(t, bodies[0], "Ihr Termin wurde erfolgreich gebucht.")
		assert.Contains(t, bodies[0], "Termin ID: "+appointment.ConfirmationCode)
		assert.Contains(t, bodies[0], "Buchung für Anna Muster")
		assert.Contains(t, bodies[0], "Datum: 31.01.2025, Zeit: 12:00")
		assert.Contains(t, bodies[0], "Ungefähre Dauer: 1h 30min")
		assert.Contains(t, bodies[0], "Services: Manicure (60 Minuten), Gel Removal (30 Minuten)")
		assert.Contains(t, bodies[0], "Ungefährer Preis: CHF 80.5")
		assert.Contains(t, bodies[0], "Ort: "+suite.config.Salon.Location)

		calendar := string(attachments[0])
		assert.Contains(t, calendar, "METHOD:REQUEST")
		assert.Contains(t, calendar, "UID:"+appointment.ConfirmationCode+"@example.com")
		assert.Contains(t, calendar, "DURATION:PT1H30M")
		assert.Contains(t, calendar, "SUMMARY:Booking: Manicure\\, Gel Removal")
	})

	t.Run("mail failure is consumed and the event still publishes", func(t *testing.T) {
		suite := newDispatcherSuite(t)
		appointment, items := fixtureAppointment()

		suite.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: 550 mailbox unavailable")).
			Times(2)
		suite.producer.EXPECT().
			SendMessages(gomock.Any(), suite.config.Kafka.Topic, gomock.Any()).
			Return(nil)

		assert.NotPanics(t, func() {
			suite.dispatcher.BookingConfirmed(context.Background(), appointment, items)
		})
	})

	t.Run("publish failure is consumed", func(t *testing.T) {
		suite := newDispatcherSuite(t)
		appointment, items := fixtureAppointment()

		suite.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)
		suite.producer.EXPECT().
			SendMessages(gomock.Any(), suite.config.Kafka.Topic, gomock.Any()).
			Return(errors.New("kafka: broker unreachable"))

		assert.NotPanics(t, func() {
			suite.dispatcher.BookingConfirmed(context.Background(), appointment, items)
		})
	})
}

func TestBookingCancelled(t *testing.T) {
	t.Run("sends the cancellation summary to both parties", func(t *testing.T) {
		suite := newDispatcherSuite(t)
		appointment, _ := fixtureAppointment()

		expectedBody := "Buchung für Anna Muster vom 31.01.2025, 12:00 erfolgreich abgesagt."

		suite.mailer.EXPECT().
			Send(gomock.Any(), "Termin erfolgreich abgesagt", suite.config.SMTP.BusinessTo, expectedBody, gomock.Nil()).
			Return(nil)
		suite.mailer.EXPECT().
			Send(gomock.Any(), "Termin erfolgreich abgesagt", appointment.CustomerEmail, expectedBody, gomock.Nil()).
			Return(nil)

		var published kafka.Message
		suite.producer.EXPECT().
			SendMessages(gomock.Any(), suite.config.Kafka.Topic, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published = messages[0]
				return nil
			})

		suite.dispatcher.BookingCancelled(context.Background(), appointment)

		assert.Equal(t, appointment.ConfirmationCode, published.Key)
	})
}

func TestInquiryReceived(t *testing.T) {
	t.Run("forwards the inquiry to the business mailbox only", func(t *testing.T) {
		suite := newDispatcherSuite(t)

		inquiry := inquiryModel.Inquiry{
			Firstname: "Lea",
			Email:     "lea@example.com",
			Phone:     "+41 78 111 22 33",
			Message:   "Bieten Sie auch Nail Art an?",
		}

		suite.mailer.EXPECT().
			Send(gomock.Any(), "Anliegen von Lea", suite.config.SMTP.BusinessTo, gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _, _, body string, _ []byte) error {
				assert.True(t, strings.Contains(body, "Anliegen von Lea"))
				assert.True(t, strings.Contains(body, "Email: lea@example.com"))
				assert.True(t, strings.Contains(body, "Telefon-Nr: +41 78 111 22 33"))
				assert.True(t, strings.Contains(body, "Anliegen: Bieten Sie auch Nail Art an?"))
				return nil
			})

		suite.dispatcher.InquiryReceived(context.Background(), inquiry)
	})
}
