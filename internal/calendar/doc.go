// Package calendar serializes canonical schedule records into
// iCalendar documents. Events carry a fixed 2-hour duration and
// declare one named timezone for the whole document; start and end are
// wall-clock values in that zone.
package calendar
