// Package ics encodes a single appointment as an iCalendar (RFC 5545)
// attachment. The output carries METHOD:REQUEST plus the UID/DTSTAMP pair
// required by Outlook, and is fully deterministic given the event fields.
// The timestamp is an input, not read from the clock.
package ics

import (
	"bytes"
	"fmt"
	"salon/shared/constant"
	"strings"
	"time"
)

// Event is one calendar entry. UID must be globally unique and stable for
// the lifetime of the booking; the confirmation code qualified with the
// business domain is used for that.
type Event struct {
	UID         string
	Timestamp   time.Time
	Start       time.Time
	Duration    time.Duration
	Summary     string
	Description string
	Location    string
}

// Encode serializes the event into a calendar file body.
func Encode(event Event) []byte {
	var buf bytes.Buffer

	writeLine(&buf, "BEGIN:VCALENDAR")
	writeLine(&buf, "METHOD:REQUEST")
	writeLine(&buf, "VERSION:2.0")
	writeLine(&buf, "PRODID:-//salon//appointments//EN")
	writeLine(&buf, "BEGIN:VEVENT")
	writeLine(&buf, "UID:"+escapeText(event.UID))
	writeLine(&buf, "DTSTAMP:"+event.Timestamp.UTC().Format(constant.TimestampFormat))
	writeLine(&buf, "DTSTART:"+event.Start.UTC().Format(constant.TimestampFormat))
	writeLine(&buf, "DURATION:"+formatDuration(event.Duration))
	writeLine(&buf, "SUMMARY:"+escapeText(event.Summary))
	writeLine(&buf, "DESCRIPTION:"+escapeText(event.Description))
	writeLine(&buf, "LOCATION:"+escapeText(event.Location))
	writeLine(&buf, "STATUS:CONFIRMED")
	writeLine(&buf, "END:VEVENT")
	writeLine(&buf, "END:VCALENDAR")

	return buf.Bytes()
}

// writeLine terminates content lines with CRLF as RFC 5545 requires.
func writeLine(buf *bytes.Buffer, line string) {
	buf.WriteString(line)
	buf.WriteString("\r\n")
}

// formatDuration renders a positive duration as an iCalendar duration value,
// e.g. PT1H30M.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())

	hours := minutes / constant.MinutesPerHour
	minutes %= constant.MinutesPerHour

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("PT%dH%dM", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("PT%dH", hours)
	default:
		return fmt.Sprintf("PT%dM", minutes)
	}
}

// escapeText escapes the characters RFC 5545 reserves in TEXT values.
func escapeText(value string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)

	return replacer.Replace(value)
}
