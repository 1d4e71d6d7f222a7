package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	efa "github.com/theoremus-urban-solutions/efa-client"
	"github.com/theoremus-urban-solutions/efa-client/config"
	"github.com/theoremus-urban-solutions/efa-client/formatter"
	"github.com/theoremus-urban-solutions/efa-client/model"
)

var departuresCmd = &cobra.Command{
	Use:   "departures <stopID>",
	Short: "List the next departures at a stop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		at, _ := cmd.Flags().GetString("at")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		if limit <= 0 {
			limit = config.Config.Departures.Limit
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		stopID := args[0]
		deps, err := client.Departures(cmd.Context(), stopID, efa.WithLimit(limit), efa.WithDateTime(at))
		if err != nil {
			return err
		}

		b, err := renderDepartures(format, stopID, deps, time.Now())
		if err != nil {
			return err
		}
		return writeOutput(output, b)
	},
}

func init() {
	departuresCmd.Flags().Int("limit", 0, "maximum number of departures (default from config)")
	departuresCmd.Flags().String("at", "", `reference time: "YYYYMMDD HH:MM", "YYYYMMDD" or "HH:MM"`)
	departuresCmd.Flags().String("format", "json", "json|pb|ics")
	departuresCmd.Flags().String("output", "", "write to file instead of stdout")
}

// renderDepartures serializes departures in the requested output format
func renderDepartures(format, stopID string, deps []model.Departure, now time.Time) ([]byte, error) {
	switch format {
	case "", "json":
		b, err := formatter.BuildJSON(deps)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "pb":
		return formatter.BuildProtobuf(formatter.DeparturesFeed(stopID, deps, now))
	case "ics":
		var buf bytes.Buffer
		if err := formatter.DeparturesICS(stopID, deps, now, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q (want json|pb|ics)", format)
}
