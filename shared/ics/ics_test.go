package ics_test

import (
	"salon/shared/ics"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testEvent() ics.Event {
	return ics.Event{
		UID:         "5f1c2d3e-aaaa-bbbb-cccc-000011112222@example.com",
		Timestamp:   time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
		Start:       time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Duration:    90 * time.Minute,
		Summary:     "Booking: Manicure, Pedicure",
		Description: "Termin ID: abc\nDatum: 01.06.2025, Zeit: 10:00",
		Location:    "Kirchgasse 3, 9500 Wil",
	}
}

func TestEncode(t *testing.T) {
	body := string(ics.Encode(testEvent()))

	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(body, "END:VCALENDAR\r\n"))

	for _, line := range []string{
		"METHOD:REQUEST",
		"UID:5f1c2d3e-aaaa-bbbb-cccc-000011112222@example.com",
		"DTSTAMP:20250520T080000Z",
		"DTSTART:20250601T080000Z",
		"DURATION:PT1H30M",
		"SUMMARY:Booking: Manicure\\, Pedicure",
		"LOCATION:Kirchgasse 3\\, 9500 Wil",
		"STATUS:CONFIRMED",
	} {
		assert.Contains(t, body, line+"\r\n", "missing content line %q", line)
	}
}

func TestEncode_EscapesDescriptionNewlines(t *testing.T) {
	body := string(ics.Encode(testEvent()))

	assert.Contains(t, body, `DESCRIPTION:Termin ID: abc\nDatum: 01.06.2025\, Zeit: 10:00`)
	assert.NotContains(t, body, "DESCRIPTION:Termin ID: abc\n")
}

func TestEncode_Deterministic(t *testing.T) {
	first := ics.Encode(testEvent())
	second := ics.Encode(testEvent())

	assert.Equal(t, first, second)
}

func TestEncode_DurationVariants(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "whole hours",
			duration: 2 * time.Hour,
			expected: "DURATION:PT2H",
		},
		{
			name:     "minutes only",
			duration: 45 * time.Minute,
			expected: "DURATION:PT45M",
		},
		{
			name:     "hours and minutes",
			duration: 105 * time.Minute,
			expected: "DURATION:PT1H45M",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testEvent()
			event.Duration = tt.duration

			assert.Contains(t, string(ics.Encode(event)), tt.expected+"\r\n")
		})
	}
}
