package app

import (
	"context"

	"hirelens/adapters/chart"
	"hirelens/adapters/dataset"
	"hirelens/adapters/report"
	"hirelens/domain/hiring"
	"hirelens/internal"
	"hirelens/internal/analysis"
	"hirelens/internal/config"

	"github.com/google/uuid"
)

// PipelineService runs the five-stage analysis: load, segment, test,
// score, report. Strictly sequential; each stage consumes the previous
// stage's output, nothing is persisted between runs.
type PipelineService struct {
	cfg    *config.Config
	logger *internal.Logger
}

// RunResult is the in-memory outcome of one pipeline run.
type RunResult struct {
	RunID     string                `json:"run_id"`
	Countries int                   `json:"countries"`
	Metrics   []hiring.ImpactMetric `json:"metrics"`
	Global    hiring.GlobalMetrics  `json:"global"`
	Summary   string                `json:"summary"`
}

// NewPipelineService creates the pipeline service.
func NewPipelineService(cfg *config.Config, logger *internal.Logger) *PipelineService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &PipelineService{cfg: cfg, logger: logger}
}

// Run executes the full pipeline once. Load and write failures abort with
// an error; undefined per-country scores are flagged and the run continues.
func (s *PipelineService) Run(ctx context.Context) (*RunResult, error) {
	runID := uuid.NewString()
	s.logger.Info("run %s: reading %s", runID, s.cfg.Data.InputFile)

	records, err := dataset.NewReader(s.cfg.Data.InputFile).Load()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	countries := dataset.CountryCount(records)
	if countries != s.cfg.Data.ExpectedCountries {
		s.logger.Warn("run %s: expected %d countries, input has %d",
			runID, s.cfg.Data.ExpectedCountries, countries)
	}
	s.logger.Info("run %s: loaded %d records for %d countries", runID, len(records), countries)

	series := analysis.GroupByCountry(records)
	metrics := analysis.ComputeAllImpacts(series)
	for _, m := range metrics {
		if !m.ImpactDefined {
			s.logger.Warn("run %s: impact undefined for %s (near-zero pre-COVID mean)", runID, m.Country)
		}
		if !m.RecoveryDefined {
			s.logger.Warn("run %s: recovery undefined for %s (near-zero during-COVID mean)", runID, m.Country)
		}
	}

	global := analysis.ComputeGlobalMetrics(metrics, series)
	periodDist := analysis.AggregatePeriodMeans(series)

	s.logger.Info("run %s: rendering charts to %s", runID, s.cfg.Output.Dir)
	if err := chart.NewRenderer(s.cfg.Output.Dir).RenderAll(metrics, periodDist); err != nil {
		return nil, err
	}
	if err := report.NewWriter(s.cfg.Output.Dir).Write(runID, metrics, global); err != nil {
		return nil, err
	}

	return &RunResult{
		RunID:     runID,
		Countries: countries,
		Metrics:   metrics,
		Global:    global,
		Summary:   report.Summary(metrics, global),
	}, nil
}
