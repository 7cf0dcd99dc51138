package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/slipway-ci/slipway/config"
)

// Run carries all state of one release run. It exists for the duration of the
// run only; nothing about it is persisted unless the caller opts into a
// summary file.
type Run struct {
	ID      string
	Params  config.Params
	Project string

	// ImageName is the environment-qualified image name, resolved exactly
	// once here. Stages read it and never recompute it.
	ImageName string

	Started time.Time

	// Mutated by stages and hooks as the run progresses.
	CheckoutDir string
	ReportPath  string
	ReportURL   string
	Image       *ImageRecord
	Outcomes    []StageOutcome
}

// ImageRecord describes the container image a run produced.
type ImageRecord struct {
	Name    string    `json:"name"`
	Tag     string    `json:"tag"`
	Ref     string    `json:"ref"`
	Builder string    `json:"builder"`
	BuiltAt time.Time `json:"built_at"`
}

// NewRun creates a Run for the given parameters and release config.
func NewRun(params config.Params, rel *config.Release) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Params:    params,
		Project:   rel.Project,
		ImageName: params.Environment.ImageName(rel.Image.BaseName),
		Started:   time.Now(),
	}
}

// ImageRef returns the full name:tag reference for the image this run builds.
func (r *Run) ImageRef() string {
	return r.ImageName + ":" + r.Params.ReleaseVersion
}

// Record appends a stage outcome to the run.
func (r *Run) Record(o StageOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// FinalStatus derives the run status from the recorded outcomes: SUCCESS iff
// no stage ended in a hard failure. Soft failures do not affect it.
func (r *Run) FinalStatus() Status {
	for _, o := range r.Outcomes {
		if o.Hard() {
			return StatusFailure
		}
	}
	return StatusSuccess
}

// Elapsed returns the time since the run started.
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.Started)
}
