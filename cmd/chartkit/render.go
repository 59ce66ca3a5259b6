package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	renderOpts chartOptions
	renderOut  string
)

var renderCmd = &cobra.Command{
	Use:   "render <dataset>",
	Short: "Render a dataset to SVG",
	Long: `Render draws a dataset as a donut chart or heat map and writes the final
frame, with all transitions settled, as an SVG document.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderOpts.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "output file, - for stdout")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	scene, c, err := renderOpts.renderScene(args[0])
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if renderOut != "-" {
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if err := scene.WriteSVG(w, int(c.Width()), int(c.Height())); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if renderOut != "-" {
		logger.Info("wrote chart", "type", renderOpts.kind, "path", renderOut)
	}
	return nil
}
