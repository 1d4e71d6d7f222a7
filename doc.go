// Package efa is a client for EFA public transit servers speaking the rapidJSON output format.
//
// A Client wraps one server base URL. Every call builds a request from the
// request package, validates its parameters, performs a GET against
// <base>/<endpoint>?commonMacro=<macro>&..., validates the decoded response
// and returns typed model records:
//
//	client, err := efa.NewClient("https://efa.vgn.de/vgnExt_oeffi/")
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	info, err := client.SystemInfo(ctx)
//	stops, err := client.FindStop(ctx, "Plärrer", request.StopFinderAny)
//	deps, err := client.Departures(ctx, stops[0].ID, efa.WithLimit(10))
//
// Errors are typed. Parameter problems surface as *request.ParameterError or
// *request.ValueError, unexpected response shapes as *request.ResponseInvalidError
// and non-200 answers as *ConnectionError.
package efa
