// Package model contains the typed records produced from EFA responses.
//
// Records are plain values created fresh on every parse and owned by the caller:
//   - SystemInfo: server version, data format and timetable validity period
//   - Stop: a location returned by the stop finder or referenced by a departure
//   - Departure: one stop event of a departure monitor response
//
// The enumerations (StopType, TransportType, StopFilter) are closed sets that mirror
// the codes used by the EFA API. Raw codes are converted with ParseStopType and
// ParseTransportType, which fail with ErrUnknownCode instead of coercing.
package model
