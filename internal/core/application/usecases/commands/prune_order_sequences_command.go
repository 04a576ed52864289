package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrPruneOrderSequencesCommandIsNotConstructed = errors.New(
		"PruneOrderSequencesCommand must be created via NewPruneOrderSequencesCommand constructor",
	)
)

// PruneOrderSequencesCommand removes per-day order counters older than the retention
// window. The counter of the current day is always kept, so issued numbers stay unique.
type PruneOrderSequencesCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPruneOrderSequencesCommand requires a retention of at least one day.
func NewPruneOrderSequencesCommand(retention time.Duration) (PruneOrderSequencesCommand, error) {
	if retention < 24*time.Hour {
		return PruneOrderSequencesCommand{}, errs.NewValueIsOutOfRangeError(
			"retention", retention.String(), (24 * time.Hour).String(), "unbounded")
	}
	return PruneOrderSequencesCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c PruneOrderSequencesCommand) Validate() error {
	return c.guard.Validate(ErrPruneOrderSequencesCommandIsNotConstructed)
}

func (c PruneOrderSequencesCommand) Retention() time.Duration { return c.retention }
