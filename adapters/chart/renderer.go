package chart

import (
	"image/color"
	"os"
	"path/filepath"

	"hirelens/domain/hiring"
	apperrors "hirelens/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Chart artifact file names. Fixed: downstream report embedding depends on
// these relative paths.
const (
	ImpactByCountryFile    = "impact_by_country.png"
	PeriodDistributionFile = "period_distribution.png"
	TopImpactedFile        = "top_10_impacted.png"
	RecoveryAnalysisFile   = "recovery_analysis.png"
)

// Palette shared across the four charts.
var (
	colorImpacted = color.RGBA{R: 0x4A, G: 0x14, B: 0x8C, A: 0xFF} // deep purple, negative change
	colorGrowth   = color.RGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF} // deep indigo, positive change
	colorScatter  = color.RGBA{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF}
	colorAxisLine = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

// Renderer writes the four analysis charts as PNG files into one output
// directory, overwriting same-named files from earlier runs.
type Renderer struct {
	outDir string
}

// NewRenderer creates a renderer targeting outDir.
func NewRenderer(outDir string) *Renderer {
	return &Renderer{outDir: outDir}
}

// RenderAll produces all four chart artifacts. Any filesystem failure is a
// fatal WRITE_FAILED error.
func (r *Renderer) RenderAll(metrics []hiring.ImpactMetric, dist hiring.PeriodDistribution) error {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return apperrors.WriteFailed(r.outDir, err)
	}
	if err := r.RenderImpactByCountry(metrics); err != nil {
		return err
	}
	if err := r.RenderPeriodDistribution(dist); err != nil {
		return err
	}
	if err := r.RenderTopImpacted(metrics); err != nil {
		return err
	}
	return r.RenderRecoveryAnalysis(metrics)
}

// RenderImpactByCountry draws a horizontal bar chart of the impact score per
// country, sorted ascending, negative bars in a different color.
func (r *Renderer) RenderImpactByCountry(metrics []hiring.ImpactMetric) error {
	ranked := hiring.RankByImpact(metrics)

	p := plot.New()
	p.Title.Text = "COVID-19 Impact on AI Hiring Rates by Country"
	p.X.Label.Text = "Change During COVID (%)"
	p.Y.Label.Text = "Country"

	names := make([]string, len(ranked))
	negatives := make(plotter.Values, len(ranked))
	positives := make(plotter.Values, len(ranked))
	for i, m := range ranked {
		names[i] = m.Country
		if m.ImpactPct < 0 {
			negatives[i] = m.ImpactPct
		} else {
			positives[i] = m.ImpactPct
		}
	}

	// Two overlaid bar sets at offset zero; the zero-length bars in each
	// set draw nothing, so every country gets a single sign-colored bar.
	for _, group := range []struct {
		values plotter.Values
		color  color.RGBA
	}{{negatives, colorImpacted}, {positives, colorGrowth}} {
		bars, err := plotter.NewBarChart(group.values, vg.Points(8))
		if err != nil {
			return apperrors.Wrap(err, "failed to build impact bar chart")
		}
		bars.Horizontal = true
		bars.Color = group.color
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalY(names...)
	p.Add(verticalZeroLine(len(ranked)))
	p.Add(plotter.NewGrid())

	return r.save(p, 8*vg.Inch, 10*vg.Inch, ImpactByCountryFile)
}

// RenderPeriodDistribution draws a box plot of the per-country mean rates
// for each period.
func (r *Renderer) RenderPeriodDistribution(dist hiring.PeriodDistribution) error {
	p := plot.New()
	p.Title.Text = "Distribution of AI Hiring Rates Across Different Periods"
	p.Y.Label.Text = "Relative AI Hiring Rate"

	labels := make([]string, 0, len(hiring.AllPeriods))
	for i, period := range hiring.AllPeriods {
		labels = append(labels, period.Label())
		values := dist[period]
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(values))
		if err != nil {
			return apperrors.Wrap(err, "failed to build period box plot")
		}
		box.FillColor = colorGrowth
		p.Add(box)
	}
	p.NominalX(labels...)
	p.Add(plotter.NewGrid())

	return r.save(p, 7*vg.Inch, 5*vg.Inch, PeriodDistributionFile)
}

// RenderTopImpacted draws a vertical bar chart of the ten most-negative
// impact scores.
func (r *Renderer) RenderTopImpacted(metrics []hiring.ImpactMetric) error {
	top := hiring.TopImpacted(metrics, 10)

	p := plot.New()
	p.Title.Text = "10 Most Impacted Countries"
	p.Y.Label.Text = "Change During COVID (%)"
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.YAlign = -0.5

	names := make([]string, len(top))
	values := make(plotter.Values, len(top))
	for i, m := range top {
		names[i] = m.Country
		values[i] = m.ImpactPct
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return apperrors.Wrap(err, "failed to build top-impacted bar chart")
	}
	bars.Color = colorImpacted
	bars.LineStyle.Width = 0
	p.Add(bars, plotter.NewGrid())
	p.NominalX(names...)

	return r.save(p, 8*vg.Inch, 5*vg.Inch, TopImpactedFile)
}

// RenderRecoveryAnalysis draws impact vs recovery as a quadrant scatter.
// Countries missing either score are left off the chart.
func (r *Renderer) RenderRecoveryAnalysis(metrics []hiring.ImpactMetric) error {
	p := plot.New()
	p.Title.Text = "COVID Impact vs Recovery Analysis"
	p.X.Label.Text = "Impact During COVID (%)"
	p.Y.Label.Text = "Post vs During-COVID Change (%)"

	pts := make(plotter.XYs, 0, len(metrics))
	for _, m := range metrics {
		if m.ImpactDefined && m.RecoveryDefined {
			pts = append(pts, plotter.XY{X: m.ImpactPct, Y: m.RecoveryPct})
		}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return apperrors.Wrap(err, "failed to build recovery scatter")
	}
	scatter.GlyphStyle.Color = colorScatter
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter, plotter.NewGrid())
	p.Add(quadrantLines(pts)...)

	return r.save(p, 8*vg.Inch, 5*vg.Inch, RecoveryAnalysisFile)
}

func (r *Renderer) save(p *plot.Plot, w, h vg.Length, name string) error {
	path := filepath.Join(r.outDir, name)
	if err := p.Save(w, h, path); err != nil {
		return apperrors.WriteFailed(path, err)
	}
	return nil
}

// verticalZeroLine marks x=0 across the nominal country rows.
func verticalZeroLine(rows int) *plotter.Line {
	line, _ := plotter.NewLine(plotter.XYs{
		{X: 0, Y: -0.5},
		{X: 0, Y: float64(rows) - 0.5},
	})
	line.LineStyle.Color = colorAxisLine
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	return line
}

// quadrantLines marks the zero axes spanning the scatter's data range.
func quadrantLines(pts plotter.XYs) []plot.Plotter {
	minX, maxX, minY, maxY := -1.0, 1.0, -1.0, 1.0
	for _, pt := range pts {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}

	hLine, _ := plotter.NewLine(plotter.XYs{{X: minX, Y: 0}, {X: maxX, Y: 0}})
	vLine, _ := plotter.NewLine(plotter.XYs{{X: 0, Y: minY}, {X: 0, Y: maxY}})
	for _, line := range []*plotter.Line{hLine, vLine} {
		line.LineStyle.Color = colorAxisLine
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return []plot.Plotter{hLine, vLine}
}
