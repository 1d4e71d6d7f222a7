// Package request builds EFA queries and maps their responses to model records.
//
// Every request kind owns a name (the endpoint, e.g. XML_DM_REQUEST), a macro
// (commonMacro value, e.g. dm), an ordered parameter set that always carries
// outputFormat=rapidJSON, and two schemas:
//   - a parameter schema checked when the query string is rendered; missing
//     parameters that declare a default are filled in at that point
//   - a response shape checked before any record is extracted
//
// Request kinds:
//   - SystemInfoRequest: server version and timetable validity
//   - StopFinderRequest: stops matching a name, best match first
//   - DeparturesRequest: departure monitor for one stop
//   - TripRequest: parameters only; parsing is not implemented
//
// Errors are distinguishable with errors.As / errors.Is: *ParameterError,
// *ResponseInvalidError, *ValueError and ErrNotImplemented.
//
// A request is not safe for concurrent use. Adding parameters, rendering the
// query and parsing the response form one sequence owned by a single caller;
// distinct requests share no state.
package request
