package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hirelens/domain/hiring"
	apperrors "hirelens/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Report artifact file names, written next to the charts.
const (
	MarkdownFile = "report.md"
	HTMLFile     = "report.html"
)

// Writer renders the run summary as markdown and HTML artifacts.
type Writer struct {
	outDir string
}

// NewWriter creates a report writer targeting outDir.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir}
}

// Write emits report.md and its gomarkdown-rendered report.html. Failures
// are fatal WRITE_FAILED errors.
func (w *Writer) Write(runID string, metrics []hiring.ImpactMetric, global hiring.GlobalMetrics) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return apperrors.WriteFailed(w.outDir, err)
	}

	md := Markdown(runID, metrics, global)
	mdPath := filepath.Join(w.outDir, MarkdownFile)
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return apperrors.WriteFailed(mdPath, err)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "COVID-19 Impact on AI Hiring Rates",
		Flags: html.CommonFlags | html.CompletePage,
	})
	htmlPath := filepath.Join(w.outDir, HTMLFile)
	if err := os.WriteFile(htmlPath, markdown.ToHTML([]byte(md), p, renderer), 0o644); err != nil {
		return apperrors.WriteFailed(htmlPath, err)
	}
	return nil
}

// Markdown builds the full report document.
func Markdown(runID string, metrics []hiring.ImpactMetric, global hiring.GlobalMetrics) string {
	var b strings.Builder

	b.WriteString("# COVID-19 Impact on AI Hiring Rates\n\n")
	fmt.Fprintf(&b, "Run `%s`, %d countries analyzed.\n\n", runID, len(metrics))

	b.WriteString("## Global Summary\n\n")
	fmt.Fprintf(&b, "- Mean change during COVID: %.2f%%\n", global.MeanImpactPct)
	fmt.Fprintf(&b, "- Median change during COVID: %.2f%%\n", global.MedianImpactPct)
	fmt.Fprintf(&b, "- Standard deviation of change: %.2f%%\n", global.StdDevImpactPct)
	fmt.Fprintf(&b, "- Most impacted: %s (%.2f%%)\n", global.MostImpactedCountry, global.MostImpactedPct)
	fmt.Fprintf(&b, "- Least impacted: %s (%.2f%%)\n", global.LeastImpactedCountry, global.LeastImpactedPct)
	if global.PValid {
		fmt.Fprintf(&b, "- Pooled Pre vs During Welch test: t=%.2f, p=%.4f (n=%d vs %d)\n",
			global.TStatistic, global.PValue, global.PreSampleSize, global.DuringSample)
	}
	b.WriteString("\n")

	b.WriteString("## Per-Country Impact\n\n")
	b.WriteString("| Country | Pre Mean | During Mean | Post Mean | Impact | Recovery | p-value |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, m := range metrics {
		fmt.Fprintf(&b, "| %s | %.3f | %.3f | %.3f | %s | %s | %s |\n",
			m.Country, m.PreMean, m.DuringMean, m.PostMean,
			pct(m.ImpactPct, m.ImpactDefined),
			pct(m.RecoveryPct, m.RecoveryDefined),
			pvalue(m))
	}
	b.WriteString("\n")

	b.WriteString("## Top 10 Most Impacted\n\n")
	for i, m := range hiring.TopImpacted(metrics, 10) {
		fmt.Fprintf(&b, "%d. %s (%.2f%%)\n", i+1, m.Country, m.ImpactPct)
	}
	b.WriteString("\n## Charts\n\n")
	for _, name := range []string{
		"impact_by_country.png", "period_distribution.png",
		"top_10_impacted.png", "recovery_analysis.png",
	} {
		fmt.Fprintf(&b, "![%s](%s)\n", strings.TrimSuffix(name, ".png"), name)
	}
	return b.String()
}

// Summary renders the per-country impact table printed to stdout on success.
func Summary(metrics []hiring.ImpactMetric, global hiring.GlobalMetrics) string {
	var b strings.Builder

	b.WriteString("=== Global Impact Summary ===\n")
	fmt.Fprintf(&b, "Mean change during COVID:   %.2f%%\n", global.MeanImpactPct)
	fmt.Fprintf(&b, "Median change during COVID: %.2f%%\n", global.MedianImpactPct)
	fmt.Fprintf(&b, "Std deviation of change:    %.2f%%\n", global.StdDevImpactPct)
	fmt.Fprintf(&b, "Most impacted:  %s (%.2f%%)\n", global.MostImpactedCountry, global.MostImpactedPct)
	fmt.Fprintf(&b, "Least impacted: %s (%.2f%%)\n", global.LeastImpactedCountry, global.LeastImpactedPct)
	if global.PValid {
		fmt.Fprintf(&b, "Pooled Welch test: t=%.2f, p=%.4f\n", global.TStatistic, global.PValue)
	}

	b.WriteString("\n=== Per-Country Impact ===\n")
	fmt.Fprintf(&b, "%-22s %9s %9s %9s %9s %9s\n", "Country", "Pre", "During", "Post", "Impact", "Recovery")
	for _, m := range metrics {
		fmt.Fprintf(&b, "%-22s %9.3f %9.3f %9.3f %9s %9s\n",
			m.Country, m.PreMean, m.DuringMean, m.PostMean,
			pct(m.ImpactPct, m.ImpactDefined),
			pct(m.RecoveryPct, m.RecoveryDefined))
	}
	return b.String()
}

func pct(v float64, defined bool) string {
	if !defined {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", v)
}

func pvalue(m hiring.ImpactMetric) string {
	if !m.PValid {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", m.PValue)
}
