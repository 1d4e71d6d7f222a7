package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/efa-client/request"
)

var parseCmd = &cobra.Command{
	Use:   "parse <system|stops|departures> <file|url|->",
	Short: "Validate and parse a saved EFA response",
	Long: `parse runs the response validation and record extraction of a request
kind over a saved rapidJSON document, without contacting a server.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := newFetcher().fetchDocument(cmd.Context(), args[1])
		if err != nil {
			return err
		}
		v, err := parseDocument(args[0], doc)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), v)
	},
}

// parseDocument maps a kind to the request whose Parse handles it
func parseDocument(kind string, doc any) (any, error) {
	switch kind {
	case "system":
		return request.NewSystemInfoRequest().Parse(doc)
	case "stops":
		return request.NewStopFinderRequest(request.StopFinderAny, "").Parse(doc)
	case "departures":
		return request.NewDeparturesRequest("").Parse(doc)
	}
	return nil, fmt.Errorf("unknown kind %q (want system|stops|departures)", kind)
}
