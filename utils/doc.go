// Package utils provides the date and time helpers shared by requests and the client.
//
// It contains:
//   - Classification of free-text date/time input (IsDateTime, IsDate, IsTime)
//   - Parsing of the date and timestamp formats used in EFA responses
//   - The default timezone departures are rendered in
package utils
