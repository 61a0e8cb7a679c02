package snowplot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
	"github.com/ukaji3/snowplot-go/pkg/snowplot/output"
	"github.com/ukaji3/snowplot-go/pkg/snowplot/render"
)

// Renderer draws a chart to an image file.
type Renderer interface {
	Render(chart *models.Chart, path string) error
}

// Failure records one dataset or chart that could not be produced.
type Failure struct {
	Dataset string
	// Variable is empty when the whole dataset failed.
	Variable models.Variable
	Err      error
}

func (f Failure) Error() string {
	if f.Variable == "" {
		return fmt.Sprintf("dataset %s: %v", f.Dataset, f.Err)
	}
	return fmt.Sprintf("dataset %s, variable %s: %v", f.Dataset, f.Variable, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Report summarises a run.
type Report struct {
	// Written lists the files created, in creation order.
	Written []string
	// Skipped lists datasets without any model output.
	Skipped []string
	// Failures lists everything that was attempted and failed.
	Failures []Failure
}

// Failed reports whether anything failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// Run loads and plots every dataset. Each dataset and each chart is attempted
// independently; failures are collected in the report.
// The returned error is non-nil only for unusable options.
func Run(datasets []string, opts Options) (*Report, error) {
	if len(datasets) == 0 {
		return nil, errors.New("no datasets given")
	}
	if opts.DOYMin >= opts.DOYMax {
		return nil, fmt.Errorf("invalid day-of-year range [%d, %d]", opts.DOYMin, opts.DOYMax)
	}
	if len(opts.Schema) == 0 {
		opts.Schema = models.DefaultSchema()
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.New(render.Options{DryRun: !opts.Save})
	}

	report := &Report{}
	for _, dataset := range datasets {
		runDataset(dataset, opts, renderer, report)
	}
	return report, nil
}

func runDataset(dataset string, opts Options, renderer Renderer, report *Report) {
	log := opts.logger().WithField("dataset", dataset)
	log.Info("read model data")

	data, err := LoadDataset(dataset, opts)
	if errors.Is(err, ErrNoData) {
		log.Warn("no model output found, skipping dataset")
		report.Skipped = append(report.Skipped, dataset)
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to load dataset")
		report.Failures = append(report.Failures, Failure{Dataset: dataset, Err: err})
		return
	}

	if opts.Save {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			log.WithError(err).Error("failed to create output directory")
			report.Failures = append(report.Failures, Failure{Dataset: dataset, Err: err})
			return
		}
	}

	if opts.Workbook && opts.Save {
		path := filepath.Join(opts.OutputDir, dataset+".xlsx")
		if err := output.WriteWorkbook(path, data); err != nil {
			log.WithError(err).Error("failed to write workbook")
			report.Failures = append(report.Failures, Failure{Dataset: dataset, Err: fmt.Errorf("workbook: %w", err)})
		} else {
			log.Infof("save %s", path)
			report.Written = append(report.Written, path)
		}
	}

	for _, v := range opts.Variables {
		path, err := plotVariable(data, v, opts, renderer)
		vlog := log.WithField("variable", string(v))
		if err != nil {
			vlog.WithError(err).Error("failed to plot")
			report.Failures = append(report.Failures, Failure{Dataset: dataset, Variable: v, Err: err})
			continue
		}
		if opts.Save {
			vlog.Infof("save %s", path)
			report.Written = append(report.Written, path)
		} else {
			vlog.WithFields(logrus.Fields{"path": path}).Info("chart rendered without saving")
		}
	}
}

func plotVariable(data *models.DatasetData, v models.Variable, opts Options, renderer Renderer) (string, error) {
	chart, err := BuildChart(data, v, opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(opts.OutputDir, chart.Name+".png")
	if err := renderer.Render(chart, path); err != nil {
		return "", err
	}
	return path, nil
}
