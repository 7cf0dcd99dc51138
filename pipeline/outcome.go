package pipeline

import "time"

// Status is the final disposition of a release run.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

// Disposition classifies how a single stage ended.
type Disposition string

const (
	StageSuccess     Disposition = "success"
	StageSoftFailure Disposition = "soft-failure"
	StageHardFailure Disposition = "hard-failure"
)

// StageOutcome records how one stage of a run ended. Reason is empty on
// success and carries the failure description otherwise.
type StageOutcome struct {
	Stage    string        `json:"stage"`
	Result   Disposition   `json:"result"`
	Reason   string        `json:"reason,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Success returns a successful outcome for the named stage.
func Success(stage string, elapsed time.Duration) StageOutcome {
	return StageOutcome{Stage: stage, Result: StageSuccess, Duration: elapsed}
}

// SoftFailure returns a tolerated failure: recorded and reported, but the run
// continues and the final status is unaffected.
func SoftFailure(stage, reason string, elapsed time.Duration) StageOutcome {
	return StageOutcome{Stage: stage, Result: StageSoftFailure, Reason: reason, Duration: elapsed}
}

// HardFailure returns a fatal failure: the run aborts and finalizes as
// FAILURE.
func HardFailure(stage, reason string, elapsed time.Duration) StageOutcome {
	return StageOutcome{Stage: stage, Result: StageHardFailure, Reason: reason, Duration: elapsed}
}

// Failed reports whether the stage ended in any failure, hard or soft.
func (o StageOutcome) Failed() bool {
	return o.Result != StageSuccess
}

// Hard reports whether the stage failure aborts the run.
func (o StageOutcome) Hard() bool {
	return o.Result == StageHardFailure
}
