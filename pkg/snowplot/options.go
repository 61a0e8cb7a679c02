// Package snowplot loads snow-algae model output and renders time-series charts.
package snowplot

import (
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

// DefaultStride keeps one point per day of hourly model output.
const DefaultStride = 24

// LoadOptions configures loading of a single CSV file.
type LoadOptions struct {
	// SkipFirstRow drops the first data row after the header.
	SkipFirstRow bool
}

// DefaultLoadOptions returns default load options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		SkipFirstRow: true,
	}
}

// Options configures a plotting run.
type Options struct {
	// InputDir holds the model CSV files, named {dataset}_o_{model}.csv.
	InputDir string
	// OutputDir receives charts and workbooks. It is created if missing.
	OutputDir string
	// Schema is the expected column layout of every input file.
	Schema models.Schema
	// Models lists the variants plotted on each chart, in legend order.
	Models []models.ModelVariant
	// Variables lists the charts produced per dataset.
	Variables []models.Variable
	// DOYMin and DOYMax bound the day-of-year axis.
	DOYMin, DOYMax int
	// Stride keeps every Stride-th point of each series.
	Stride int
	// Save writes charts to OutputDir. When false charts are rendered but not written.
	Save bool
	// Workbook additionally writes the loaded tables to {OutputDir}/{dataset}.xlsx.
	Workbook bool
	// Load configures CSV loading.
	Load LoadOptions
	// Renderer draws charts. If nil, the PNG renderer is used.
	Renderer Renderer
	// Logger receives progress and warnings. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the standard four-model, six-variable plotting setup.
func DefaultOptions() Options {
	return Options{
		InputDir:  "../output",
		OutputDir: ".",
		Schema:    models.DefaultSchema(),
		Models:    models.ModelVariants(),
		Variables: models.Variables(),
		DOYMin:    0,
		DOYMax:    365,
		Stride:    DefaultStride,
		Save:      true,
		Load:      DefaultLoadOptions(),
	}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
