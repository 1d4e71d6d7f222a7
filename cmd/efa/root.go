package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	efa "github.com/theoremus-urban-solutions/efa-client"
	"github.com/theoremus-urban-solutions/efa-client/config"
	"github.com/theoremus-urban-solutions/efa-client/internal"
)

var (
	configPath   string
	endpointName string
	baseURL      string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "efa",
	Short: "Query EFA public transit servers",
	Long: `efa talks to an EFA server through its rapidJSON interface.
It prints system information, searches stops and lists departures.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			internal.InitLogging(os.Stderr)
		}

		var paths []string
		if configPath != "" {
			paths = []string{configPath}
		}
		err := config.LoadAppConfig(paths...)
		if err == nil {
			return nil
		}
		if configPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// no config file in the default locations; run on defaults
		cfg, err := config.Parse(nil)
		if err != nil {
			return err
		}
		config.Config = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default efa.yml or config.yml)")
	rootCmd.PersistentFlags().StringVar(&endpointName, "endpoint", "", "endpoint name from config endpoints[]")
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "EFA base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(systemCmd, stopsCmd, departuresCmd, parseCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds a client from the flags and the loaded config
func newClient() (*efa.Client, error) {
	url := baseURL
	if url == "" {
		url = config.SelectEndpoint(endpointName)
	}
	if url == "" {
		return nil, fmt.Errorf("no EFA server configured; pass --url or set client.baseURL")
	}

	loc, err := config.Config.Client.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	opts := []efa.Option{
		efa.WithHTTPClient(&http.Client{Timeout: config.Config.Client.Timeout()}),
		efa.WithLocation(loc),
	}
	if ua := config.Config.Client.UserAgent; ua != "" {
		opts = append(opts, efa.WithUserAgent(ua))
	}
	return efa.NewClient(url, opts...)
}
