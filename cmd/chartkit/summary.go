package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/chartkit"
)

var summaryBuckets int

var summaryCmd = &cobra.Command{
	Use:   "summary <dataset>",
	Short: "Print keys, totals and thresholds of a dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVarP(&summaryBuckets, "buckets", "b", chartkit.DefaultBuckets, "number of color buckets to derive thresholds for")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, err := chartkit.LoadDataset(args[0])
	if err != nil {
		return err
	}
	sum, err := chartkit.Summarize(ds, chartkit.WithBuckets(summaryBuckets))
	if err != nil {
		return err
	}
	logger.V(1).Info("summarized", "path", args[0], "rows", len(sum.RowKeys), "columns", len(sum.ColumnKeys))
	return printSummary(cmd.OutOrStdout(), sum)
}

func printSummary(out io.Writer, sum *chartkit.Summary) error {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	warn := color.New(color.FgYellow)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = bold.Fprintf(w, "ROW\tTOTAL\n")
	for i, key := range sum.RowKeys {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", key, formatValue(sum.RowTotals[i]))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintf(w, "COLUMN\tTOTAL\n")
	for _, key := range sum.ColumnKeys {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", key, formatValue(sum.ColumnTotals[key]))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "%s %s\n", bold.Sprint("Grand total:"), formatValue(sum.GrandTotal))
	if math.IsNaN(sum.MinValue) {
		_, _ = dim.Fprintln(out, "No values.")
	} else {
		_, _ = fmt.Fprintf(out, "%s %s .. %s\n", bold.Sprint("Range:"), formatValue(sum.MinValue), formatValue(sum.MaxValue))
		parts := make([]string, len(sum.Thresholds))
		for i, t := range sum.Thresholds {
			parts[i] = formatValue(t)
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", bold.Sprint("Thresholds:"), strings.Join(parts, ", "))
	}
	for _, d := range sum.Duplicates {
		_, _ = warn.Fprintf(out, "warning: duplicate key %q in series %q, last value used\n", d.Column, d.Row)
	}
	return nil
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
