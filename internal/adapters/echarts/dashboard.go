// Package echarts renders a Report as a self-contained HTML dashboard.
// Pure presentation glue: every panel consumes a ranked list or a
// grouped aggregate straight off the report.
package echarts

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"reviewlens/internal/domain"
)

// Renderer satisfies the http adapter's Dashboard interface.
type Renderer struct{}

func (Renderer) Render(w http.ResponseWriter, rep domain.Report) error {
	return RenderDashboard(w, rep)
}

// RenderDashboard writes the full dashboard page for one report.
func RenderDashboard(w io.Writer, rep domain.Report) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = "Review analytics"

	page.AddCharts(ratingChart(rep))
	if rep.TrendAvailable {
		page.AddCharts(trendChart(rep.Trend))
	}
	page.AddCharts(
		termChart("Selling points (positive reviews)", rep.PositiveTerms, ""),
		negativeChart(rep),
	)
	if len(rep.Variants) > 0 {
		page.AddCharts(variantChart(rep.Variants))
	}
	return page.Render(w)
}

func ratingChart(rep domain.Report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "Rating distribution",
		Subtitle: fmt.Sprintf("avg %.2f | %d reviews | %.1f%% negative",
			rep.Summary.AvgRating, rep.Summary.ReviewCount, rep.Summary.NegativePercent),
	}))
	labels := make([]string, 0, len(rep.Histogram))
	data := make([]opts.BarData, 0, len(rep.Histogram))
	for _, rc := range rep.Histogram {
		labels = append(labels, fmt.Sprintf("%g", rc.Rating))
		data = append(data, opts.BarData{Value: rc.Count})
	}
	bar.SetXAxis(labels).AddSeries("reviews", data)
	return bar
}

func trendChart(trend []domain.MonthCount) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Monthly review trend"}))
	months := make([]string, 0, len(trend))
	data := make([]opts.LineData, 0, len(trend))
	for _, mc := range trend {
		months = append(months, mc.Month)
		data = append(data, opts.LineData{Value: mc.Count})
	}
	line.SetXAxis(months).AddSeries("reviews", data)
	return line
}

func termChart(title string, terms []domain.TermCount, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}))
	// Reverse so the top term renders at the top of the flipped axis.
	labels := make([]string, 0, len(terms))
	data := make([]opts.BarData, 0, len(terms))
	for i := len(terms) - 1; i >= 0; i-- {
		labels = append(labels, terms[i].Term)
		data = append(data, opts.BarData{Value: terms[i].Count})
	}
	bar.SetXAxis(labels).AddSeries("count", data)
	bar.XYReversal()
	return bar
}

func negativeChart(rep domain.Report) *charts.Bar {
	if rep.NoNegatives {
		// Empty subset renders as a success note, not an empty chart.
		return termChart("Pain points", nil, "No negative reviews (3 stars and below) in this dataset.")
	}
	return termChart("Pain points (negative reviews)", rep.NegativeTerms, "")
}

func variantChart(stats []domain.VariantStat) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Average rating by variant",
		Subtitle: "worst variants first",
	}))
	labels := make([]string, 0, len(stats))
	data := make([]opts.BarData, 0, len(stats))
	for _, v := range stats {
		labels = append(labels, v.Variant)
		data = append(data, opts.BarData{Value: v.AvgRating})
	}
	bar.SetXAxis(labels).AddSeries("avg rating", data)
	return bar
}
