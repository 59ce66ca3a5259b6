package chartkit

import "errors"

// Structural errors. They abort the render of the affected chart only and are
// returned to the caller wrapped with context; match them with errors.Is.
var (
	// ErrEmptyDataset is returned when a summary is requested for a dataset
	// with no series, or when extrema are needed but no values exist.
	ErrEmptyDataset = errors.New("chartkit: empty dataset")

	// ErrEmptyDomain is returned when a scale is built over no keys or
	// no thresholds.
	ErrEmptyDomain = errors.New("chartkit: empty scale domain")

	// ErrZeroTotal is returned when an angular partition is requested over
	// values that sum to zero.
	ErrZeroTotal = errors.New("chartkit: values sum to zero")

	// ErrUnknownSeries is returned when a chart is told to draw a Series key
	// the dataset does not contain.
	ErrUnknownSeries = errors.New("chartkit: unknown series")

	// ErrEmptyPalette is returned when a color scale is built without colors.
	ErrEmptyPalette = errors.New("chartkit: empty palette")

	// ErrUnsortedThresholds is returned when thresholds decrease.
	ErrUnsortedThresholds = errors.New("chartkit: thresholds are not non-decreasing")

	// ErrUnknownFormat is returned when a dataset or config file extension
	// is not recognized.
	ErrUnknownFormat = errors.New("chartkit: unknown file format")
)
