package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartSize is the canvas size of the HTML page.
type ChartSize struct {
	Width  string
	Height string
}

func bigValue(s string) float64 {
	f, ok := new(big.Float).SetString(s)
	if !ok {
		return 0
	}
	v, _ := f.Float64()
	return v
}

func toBarItems(rows []ComponentRow, value func(ComponentRow) float64) []opts.BarData {
	out := make([]opts.BarData, len(rows))
	for i, r := range rows {
		out[i] = opts.BarData{Value: value(r)}
	}
	return out
}

// NewDecompositionChart plots multiplicity and total dimension per component type.
func NewDecompositionChart(r Report, size ChartSize) *charts.Bar {
	labels := make([]string, len(r.Components))
	for i, c := range r.Components {
		labels[i] = c.Type
	}
	subtitle := fmt.Sprintf("dim=%s, complexity=%s, semisimple=%s", r.Dim, r.Complexity, yesNo(r.Semisimple))
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: r.Algebra, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: r.Algebra, Width: size.Width, Height: size.Height}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("count", toBarItems(r.Components, func(c ComponentRow) float64 { return bigValue(c.Count) })).
		AddSeries("dim x count", toBarItems(r.Components, func(c ComponentRow) float64 {
			return bigValue(c.Dim) * bigValue(c.Count)
		})).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}

// WriteChart renders the decomposition chart of r as a standalone HTML page.
func WriteChart(w io.Writer, r Report, size ChartSize) error {
	if r.Local {
		return fmt.Errorf("render: %s is local, nothing to chart", r.Algebra)
	}
	page := components.NewPage()
	page.AddCharts(NewDecompositionChart(r, size))
	return page.Render(w)
}
