package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Summary is the machine-readable record of a finished run, written only when
// the caller opts in.
type Summary struct {
	RunID       string         `json:"run_id"`
	Project     string         `json:"project"`
	Version     string         `json:"version"`
	Environment string         `json:"environment"`
	Branch      string         `json:"branch"`
	Status      Status         `json:"status"`
	StartedAt   time.Time      `json:"started_at"`
	DurationMS  int64          `json:"duration_ms"`
	Image       *ImageRecord   `json:"image,omitempty"`
	ReportURL   string         `json:"report_url,omitempty"`
	Stages      []StageSummary `json:"stages"`
}

// StageSummary is one stage row of a run summary.
type StageSummary struct {
	Name       string `json:"name"`
	Result     string `json:"result"`
	Reason     string `json:"reason,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// NewSummary flattens a finished run into its summary form.
func NewSummary(run *Run) *Summary {
	s := &Summary{
		RunID:       run.ID,
		Project:     run.Project,
		Version:     run.Params.ReleaseVersion,
		Environment: string(run.Params.Environment),
		Branch:      run.Params.Branch,
		Status:      run.FinalStatus(),
		StartedAt:   run.Started,
		DurationMS:  run.Elapsed().Milliseconds(),
		Image:       run.Image,
		ReportURL:   run.ReportURL,
	}
	for _, o := range run.Outcomes {
		s.Stages = append(s.Stages, StageSummary{
			Name:       o.Stage,
			Result:     string(o.Result),
			Reason:     o.Reason,
			DurationMS: o.Duration.Milliseconds(),
		})
	}
	return s
}

// WriteSummary writes the run summary as JSON to the given path.
func WriteSummary(path string, run *Run) error {
	data, err := json.MarshalIndent(NewSummary(run), "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling run summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing run summary: %w", err)
	}
	return nil
}
