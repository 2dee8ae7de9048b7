package sections

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

// Step is one journaled store mutation.
type Step struct {
	Name   string     `json:"name"`
	Target string     `json:"target"`
	ItemID string     `json:"itemId,omitempty"`
	Status StepStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Journal records the steps a workflow run has performed.
type Journal struct {
	ID        string    `json:"id"`
	Workflow  string    `json:"workflow"`
	StartedAt time.Time `json:"startedAt"`
	Steps     []Step    `json:"steps"`

	logger *slog.Logger
}

func newJournal(workflow string, logger *slog.Logger) *Journal {
	id := uuid.NewString()
	return &Journal{
		ID:        id,
		Workflow:  workflow,
		StartedAt: time.Now().UTC(),
		Steps:     []Step{},
		logger:    logger.With("workflow", workflow, "operation", id),
	}
}

// run executes fn as a named step. A failure is recorded and returned as a
// *StepError; the caller aborts the workflow.
func (j *Journal) run(name, target, itemID string, fn func() error) error {
	step := Step{Name: name, Target: target, ItemID: itemID}

	if err := fn(); err != nil {
		step.Status = StepFailed
		step.Error = err.Error()
		j.Steps = append(j.Steps, step)
		j.logger.Error("step failed", "step", name, "target", target, "error", err)
		return &StepError{Workflow: j.Workflow, Step: name, ItemID: itemID, Err: err}
	}

	step.Status = StepCompleted
	j.Steps = append(j.Steps, step)
	j.logger.Debug("step completed", "step", name, "target", target)
	return nil
}

// Completed returns the number of completed steps with the given name.
func (j *Journal) Completed(name string) int {
	n := 0
	for _, s := range j.Steps {
		if s.Name == name && s.Status == StepCompleted {
			n++
		}
	}
	return n
}

// StepError reports the workflow step, and item when applicable, that failed.
type StepError struct {
	Workflow string
	Step     string
	ItemID   string
	Err      error
}

func (e *StepError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("%s %s (item %s): %v", e.Workflow, e.Step, e.ItemID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Workflow, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
