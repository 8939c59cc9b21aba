// Package timezone provides timezone utilities for the application.
//
// Booking dates and times arrive as local wall-clock strings
// ("31.01.2025", "12:00") and must be parsed and rendered in the salon's
// timezone, never the host's.
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Parsing times in app timezone:
//     t, err := timezone.Parse("02.01.2006", "31.01.2025")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names like "Europe/Zurich" or "UTC".
package timezone
