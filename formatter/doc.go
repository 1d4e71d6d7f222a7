// Package formatter serializes parsed EFA records for output.
//
// This package is organized into:
// - json.go: indented JSON for any record
// - gtfsrt.go: departures as a GTFS-Realtime TripUpdates feed (protobuf)
// - ics.go: departures as iCalendar events
package formatter
