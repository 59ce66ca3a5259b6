package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/chartkit"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a dataset between formats",
	Long: `Convert reads a dataset in any supported format and writes it in the
format named by the output extension: .json, .yaml, .yml or .xlsx.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(_ *cobra.Command, args []string) (err error) {
	ds, err := chartkit.LoadDataset(args[0])
	if err != nil {
		return err
	}
	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := writeDataset(f, ds, strings.TrimPrefix(filepath.Ext(args[1]), ".")); err != nil {
		return fmt.Errorf("convert %s: %w", args[1], err)
	}
	logger.Info("converted dataset", "from", args[0], "to", args[1], "series", len(ds))
	return nil
}

func writeDataset(w io.Writer, ds chartkit.Dataset, format string) error {
	switch strings.ToLower(format) {
	case "xlsx":
		return chartkit.WriteWorkbook(w, ds)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q: %w", format, chartkit.ErrUnknownFormat)
}
