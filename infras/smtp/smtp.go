package smtp

//go:generate go run go.uber.org/mock/mockgen -source=./smtp.go -destination=./mocks/smtp_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	gosmtp "net/smtp"
	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	otelScopeName      = "smtp"
	attachmentFilename = "appointment.ics"
	multipartBoundary  = "salon-mail-boundary"
)

// Mailer delivers a plain-text message to a single recipient, optionally
// carrying an iCalendar attachment. Implementations report delivery errors
// to the caller; deciding whether such errors are fatal is the caller's
// concern.
type Mailer interface {
	Send(ctx context.Context, subject, recipient, body string, attachment []byte) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, subject, recipient, body string, attachment []byte) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	smtpCfg := m.config.SMTP

	message := m.buildMessage(subject, recipient, body, attachment)

	auth := gosmtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	addr := net.JoinHostPort(smtpCfg.Host, smtpCfg.Port)

	// SendMail upgrades to STARTTLS when the server offers it, matching the
	// transport the business mailbox requires.
	if err = gosmtp.SendMail(addr, auth, smtpCfg.Sender, []string{recipient}, message); err != nil {
		log.Error().Err(err).Str("recipient", recipient).Str("subject", subject).Msg("Failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("recipient", recipient).Str("subject", subject).Msg("Mail sent")

	return nil
}

func (m *mailerImpl) buildMessage(subject, recipient, body string, attachment []byte) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", m.config.SMTP.Sender)
	fmt.Fprintf(&buf, "To: %s\r\n", recipient)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", multipartBoundary)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", multipartBoundary)
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	if len(attachment) > 0 {
		fmt.Fprintf(&buf, "--%s\r\n", multipartBoundary)
		fmt.Fprintf(&buf, "Content-Type: %s; name=%q\r\n", constant.ContentTypeCalendar, attachmentFilename)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n", attachmentFilename)
		buf.WriteString("\r\n")
		buf.WriteString(base64.StdEncoding.EncodeToString(attachment))
		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "--%s--\r\n", multipartBoundary)

	return buf.Bytes()
}
