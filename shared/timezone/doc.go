// Package timezone pins the property's local calendar. Add-on timestamps, "today" and
// the default month for expense and metrics requests are all taken in this location.
//
// The location comes from APP_TIMEZONE and is loaded when the package is imported,
// falling back to UTC when the name is missing or unknown:
//
//	today := timezone.Today()         // daterange.Date
//	month := timezone.CurrentMonth()  // daterange.Month
//	stamp := timezone.Now()           // time.Time in the app location
//
// Use IANA names such as "Asia/Manila"; abbreviations like "PHT" are rejected.
package timezone
