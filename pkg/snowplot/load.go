package snowplot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
	"github.com/ukaji3/snowplot-go/pkg/snowplot/parser"
)

// Load reads one CSV file into a table and derives its day-of-year sequence.
// A missing file yields an error matching ErrFileNotFound.
func Load(path string, schema models.Schema, opts LoadOptions) (*models.Table, models.DayOfYear, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.DayOfYear{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, models.DayOfYear{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, models.DayOfYear{}, err
	}
	defer f.Close()

	table, err := parser.ReadTable(f, schema, parser.Options{SkipFirstRow: opts.SkipFirstRow})
	if err != nil {
		return nil, models.DayOfYear{}, fmt.Errorf("load %s: %w", path, err)
	}

	return table, parser.DayOfYearSeries(table.Dates), nil
}

// VariantPath returns the CSV path of one model variant of a dataset.
func VariantPath(dir, dataset, model string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_o_%s.csv", dataset, model))
}

// LoadDataset loads every configured model variant of a dataset.
// Missing variant files are logged and skipped; if none exist the error is ErrNoData.
// Every variant's day-of-year sequence is relative to the first loaded variant's base year.
func LoadDataset(dataset string, opts Options) (*models.DatasetData, error) {
	log := opts.logger().WithField("dataset", dataset)

	data := &models.DatasetData{Name: dataset}
	for _, m := range opts.Models {
		path := VariantPath(opts.InputDir, dataset, m.ID)
		table, doy, err := Load(path, opts.Schema, opts.Load)
		if errors.Is(err, ErrFileNotFound) {
			log.WithField("model", m.ID).Warnf("%s does not exist", path)
			continue
		}
		if err != nil {
			return nil, err
		}

		if len(data.Variants) == 0 {
			data.BaseYear = doy.BaseYear
		} else if doy.BaseYear != data.BaseYear {
			doy = parser.DayOfYearFrom(data.BaseYear, table.Dates)
		}
		log.WithFields(logrus.Fields{
			"model": m.ID,
			"rows":  table.Len(),
		}).Debug("loaded model output")

		data.Variants = append(data.Variants, models.VariantData{Model: m, Table: table, DOY: doy})
	}

	if len(data.Variants) == 0 {
		return nil, fmt.Errorf("%w for dataset %s", ErrNoData, dataset)
	}
	return data, nil
}
