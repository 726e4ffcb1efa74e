package transfer

import (
	"ferry/internal/log"
)

// Outcome is the structured result of a transfer attempt. Failures carry a
// diagnostic for the status line; nothing is retried or rolled back.
type Outcome struct {
	OK         bool
	Diagnostic string
}

// Executor invokes the copy engine and interprets its result. Errors never
// propagate past Execute.
type Executor struct {
	engine CopyEngine
}

// NewExecutor creates an Executor backed by the given engine.
func NewExecutor(engine CopyEngine) *Executor {
	return &Executor{engine: engine}
}

// Execute runs the copy and reports the outcome. The call blocks until the
// engine finishes; there is no cancellation.
func (x *Executor) Execute(source, dest string) Outcome {
	if err := x.engine.CopyRecursive(source, dest); err != nil {
		log.LogWithError(err).Error("transfer failed")
		return Outcome{Diagnostic: err.Error()}
	}
	log.LogWithFields(log.F("source", source), log.F("dest", dest)).Info("transfer complete")
	return Outcome{OK: true}
}
