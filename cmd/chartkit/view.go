package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phanxgames/chartkit"
)

var (
	viewOpts chartOptions
	viewFPS  bool
)

var viewCmd = &cobra.Command{
	Use:   "view <dataset>",
	Short: "Show a dataset in a window",
	Long: `View opens a window with the chart. Hovering and clicking arcs or cells
logs the chart events they dispatch.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewOpts.register(viewCmd)
	viewCmd.Flags().BoolVar(&viewFPS, "fps", false, "show the frame rate")
}

func runView(_ *cobra.Command, args []string) error {
	scene, c, err := viewOpts.renderScene(args[0])
	if err != nil {
		return err
	}
	logEvents(c)
	return chartkit.Run(scene, chartkit.RunConfig{
		Title:   "chartkit: " + filepath.Base(args[0]),
		Width:   int(c.Width()),
		Height:  int(c.Height()),
		ShowFPS: viewFPS,
	})
}

// logEvents logs every chart event at info level.
func logEvents(c renderer) {
	log := func(e chartkit.Event) {
		logger.Info(string(e.Name), "series", e.Series, "key", e.Value.Key, "value", e.Value.Value, "index", e.Index)
	}
	for _, name := range chartkit.EventNames {
		switch c := c.(type) {
		case *chartkit.DonutChart:
			c.On(name, log)
		case *chartkit.HeatMap:
			c.On(name, log)
		}
	}
}
