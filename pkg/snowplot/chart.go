package snowplot

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

// xTickStep is the spacing of labelled day-of-year ticks.
const xTickStep = 30

// ChartName returns the file stem of a chart: {variable}_{dataset}.
func ChartName(v models.Variable, dataset string) string {
	return fmt.Sprintf("%s_%s", v, dataset)
}

// BuildChart describes the chart of one variable across every loaded variant.
// Series of log-scale variables have zeros replaced by NaN.
func BuildChart(data *models.DatasetData, v models.Variable, opts Options) (*models.Chart, error) {
	style, ok := v.Style()
	if !ok {
		return nil, fmt.Errorf("unknown variable: %s", v)
	}

	chart := &models.Chart{
		Name:       ChartName(v, data.Name),
		Title:      data.Name,
		XAxisTitle: fmt.Sprintf("Day of the Year (%04d)", data.BaseYear),
		YAxisTitle: style.Label,
		XAxisRange: [2]float64{float64(opts.DOYMin), float64(opts.DOYMax)},
		XTicks:     dayTicks(opts.DOYMin, opts.DOYMax),
		YAxisRange: [2]float64{style.YMin, style.YMax},
		LogScale:   style.LogScale(),
		Threshold:  style.Threshold,
	}

	for _, vd := range data.Variants {
		values, err := vd.Table.Column(style.Column)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", vd.Model.ID, err)
		}
		if style.LogScale() {
			values = models.MaskZeros(values)
		}

		x := make([]float64, len(vd.DOY.Days))
		for i, d := range vd.DOY.Days {
			x[i] = float64(d)
		}

		chart.Series = append(chart.Series, models.ChartSeries{
			Name:  vd.Model.Label,
			Color: vd.Model.Color,
			X:     models.Stride(x, opts.Stride),
			Y:     models.Stride(values, opts.Stride),
		})
	}

	return chart, nil
}

// dayTicks returns labelled ticks from lo+10 through hi, every xTickStep days.
func dayTicks(lo, hi int) []models.Tick {
	var ticks []models.Tick
	for d := lo + 10; d <= hi; d += xTickStep {
		ticks = append(ticks, models.Tick{Value: float64(d), Label: strconv.Itoa(d)})
	}
	return ticks
}
