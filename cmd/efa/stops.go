package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/efa-client/config"
	"github.com/theoremus-urban-solutions/efa-client/model"
)

var stopsCmd = &cobra.Command{
	Use:   "stops <name>",
	Short: "Search stops by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		searchType, _ := cmd.Flags().GetString("type")
		asTable, _ := cmd.Flags().GetBool("table")
		if searchType == "" {
			searchType = config.Config.StopFinder.Type
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		stops, err := client.FindStop(cmd.Context(), args[0], searchType)
		if err != nil {
			return err
		}
		if asTable {
			return printStops(cmd.OutOrStdout(), stops)
		}
		return printJSON(cmd.OutOrStdout(), stops)
	},
}

func init() {
	stopsCmd.Flags().String("type", "", "search type: any|coord (default from config)")
	stopsCmd.Flags().Bool("table", false, "print a table instead of JSON")
}

func printStops(w io.Writer, stops []model.Stop) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tTRANSPORTS")
	for _, s := range stops {
		names := make([]string, 0, len(s.Transports))
		for _, t := range s.Transports {
			names = append(names, t.Title())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Type, strings.Join(names, ", "))
	}
	return tw.Flush()
}
