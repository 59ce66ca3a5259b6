package chartkit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk chart configuration. Zero fields keep the
// chart's defaults. Chart-specific fields are ignored by other chart types.
type FileConfig struct {
	Width      float64           `yaml:"width" toml:"width"`
	Height     float64           `yaml:"height" toml:"height"`
	Margin     *Margin           `yaml:"margin" toml:"margin"`
	Colors     []string          `yaml:"colors" toml:"colors"`
	Transition *TransitionConfig `yaml:"transition" toml:"transition"`

	// Donut only.
	Radius      float64 `yaml:"radius" toml:"radius"`
	InnerRadius float64 `yaml:"innerRadius" toml:"innerRadius"`
	LabelOffset float64 `yaml:"labelOffset" toml:"labelOffset"`
	Series      string  `yaml:"series" toml:"series"`

	// Heat map only.
	Thresholds []float64 `yaml:"thresholds" toml:"thresholds"`
	Buckets    int       `yaml:"buckets" toml:"buckets"`
}

// TransitionConfig names an ease function and a duration such as "750ms".
type TransitionConfig struct {
	Ease     string `yaml:"ease" toml:"ease"`
	Duration string `yaml:"duration" toml:"duration"`
}

var easeByName = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// EaseNames returns the ease names accepted in configuration, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easeByName))
	for n := range easeByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EaseByName returns the ease function registered under name. Matching is
// case-insensitive.
func EaseByName(name string) (ease.TweenFunc, error) {
	for n, fn := range easeByName {
		if strings.EqualFold(n, name) {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) chart configuration.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	fc, err := DecodeConfig(bytes.NewReader(data), formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return fc, nil
}

// DecodeConfig decodes a chart configuration in the given format: "yaml" or
// "toml".
func DecodeConfig(r io.Reader, format string) (*FileConfig, error) {
	var fc FileConfig
	switch format {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&fc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&fc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config format %q: %w", format, ErrUnknownFormat)
	}
	return &fc, nil
}

// formatOf returns the lower-case extension of path without the dot.
func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Apply overlays the non-zero fields of fc onto base.
func (fc *FileConfig) Apply(base Config) (Config, error) {
	cfg := base
	if fc.Width > 0 {
		cfg.Width = fc.Width
	}
	if fc.Height > 0 {
		cfg.Height = fc.Height
	}
	if fc.Margin != nil {
		cfg.Margin = *fc.Margin
	}
	if len(fc.Colors) > 0 {
		colors, err := HexPalette(fc.Colors)
		if err != nil {
			return base, fmt.Errorf("colors: %w", err)
		}
		cfg.Colors = colors
	}
	if t := fc.Transition; t != nil {
		if t.Ease != "" {
			fn, err := EaseByName(t.Ease)
			if err != nil {
				return base, fmt.Errorf("transition: %w", err)
			}
			cfg.Transition.Ease = fn
		}
		if t.Duration != "" {
			d, err := time.ParseDuration(t.Duration)
			if err != nil {
				return base, fmt.Errorf("transition duration: %w", err)
			}
			if d < 0 {
				return base, fmt.Errorf("transition duration %s is negative", d)
			}
			cfg.Transition.Duration = d
		}
	}
	return cfg, nil
}

// ApplyDonut configures d from fc.
func (fc *FileConfig) ApplyDonut(d *DonutChart) error {
	cfg, err := fc.Apply(d.cfg)
	if err != nil {
		return err
	}
	d.SetConfig(cfg)
	if fc.Radius > 0 {
		d.SetRadius(fc.Radius)
	}
	if fc.InnerRadius > 0 {
		d.SetInnerRadius(fc.InnerRadius)
	}
	if fc.LabelOffset > 0 {
		d.SetLabelOffset(fc.LabelOffset)
	}
	if fc.Series != "" {
		d.SetSeries(fc.Series)
	}
	return nil
}

// ApplyHeatMap configures h from fc.
func (fc *FileConfig) ApplyHeatMap(h *HeatMap) error {
	cfg, err := fc.Apply(h.cfg)
	if err != nil {
		return err
	}
	if len(fc.Thresholds) > 0 && !sort.Float64sAreSorted(fc.Thresholds) {
		return fmt.Errorf("thresholds %v: %w", fc.Thresholds, ErrUnsortedThresholds)
	}
	h.SetConfig(cfg)
	if len(fc.Thresholds) > 0 {
		h.SetThresholds(fc.Thresholds)
	}
	if fc.Buckets > 0 {
		h.SetBuckets(fc.Buckets)
	}
	return nil
}
