package dispatch

import "fmt"

// Stage identifies the pipeline stage a failure is attributed to.
type Stage string

const (
	// StageReceive covers key decoding and the object existence check.
	StageReceive Stage = "receive"
	// StageExtract covers fetching the document and both extraction calls.
	StageExtract Stage = "extract"
	// StagePersist covers the store write.
	StagePersist Stage = "persist"
	// StageNotify covers email dispatch. Notify failures are swallowed at
	// the dispatcher and never terminate a record.
	StageNotify Stage = "notify"
)

// StageError attributes a failure to the stage that raised it, so the
// per-record loop can aggregate outcomes explicitly instead of relying on
// propagation.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
