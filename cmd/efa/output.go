package main

import (
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/efa-client/formatter"
)

// writeOutput writes b to path, or to stdout when path is empty
func writeOutput(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	b, err := formatter.BuildJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
