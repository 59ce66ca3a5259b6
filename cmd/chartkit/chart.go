package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/phanxgames/chartkit"
)

// chartOptions are the flags shared by render and view.
type chartOptions struct {
	kind   string
	config string
}

func (o *chartOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.kind, "type", "t", "heatmap", "chart type: donut or heatmap")
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "chart configuration file (.yaml or .toml)")
}

// renderer is the part of a chart the commands need.
type renderer interface {
	Render(container *chartkit.Node, ds chartkit.Dataset) error
	Width() float64
	Height() float64
}

// build creates the chart selected by o, applying its configuration file.
func (o *chartOptions) build(log logr.Logger) (renderer, error) {
	var fc *chartkit.FileConfig
	if o.config != "" {
		var err error
		if fc, err = chartkit.LoadConfig(o.config); err != nil {
			return nil, err
		}
	}
	switch o.kind {
	case "donut":
		d := chartkit.NewDonutChart().SetLogger(log)
		if fc != nil {
			if err := fc.ApplyDonut(d); err != nil {
				return nil, fmt.Errorf("config %s: %w", o.config, err)
			}
		}
		return d, nil
	case "heatmap", "heat-map":
		h := chartkit.NewHeatMap().SetLogger(log)
		if fc != nil {
			if err := fc.ApplyHeatMap(h); err != nil {
				return nil, fmt.Errorf("config %s: %w", o.config, err)
			}
		}
		return h, nil
	}
	return nil, fmt.Errorf("unknown chart type %q; want donut or heatmap", o.kind)
}

// renderScene loads the dataset at path and renders it into a new scene.
func (o *chartOptions) renderScene(path string) (*chartkit.Scene, renderer, error) {
	ds, err := chartkit.LoadDataset(path)
	if err != nil {
		return nil, nil, err
	}
	c, err := o.build(logger)
	if err != nil {
		return nil, nil, err
	}
	scene := chartkit.NewScene()
	scene.SetLogger(logger)
	if err := c.Render(scene.Root(), ds); err != nil {
		return nil, nil, err
	}
	return scene, c, nil
}
