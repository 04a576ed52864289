package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPruneSchedule runs the pruning once a day at 03:15.
const DefaultPruneSchedule = "15 3 * * *"

type sequencePruner interface {
	Handle(ctx context.Context, cmd commands.PruneOrderSequencesCommand) (int64, error)
}

// SequencePruningJob periodically deletes per-day order number counters older than
// the retention. The counter of the current day is always newer than the cutoff.
type SequencePruningJob struct {
	handler   sequencePruner
	retention time.Duration
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewSequencePruningJob(
	handler sequencePruner,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *SequencePruningJob {
	if schedule == "" {
		schedule = DefaultPruneSchedule
	}
	return &SequencePruningJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithLocation(time.UTC)),
		logger:    logger.With("component", "sequence_pruning_job"),
	}
}

// Start validates the retention and the schedule and starts the scheduler.
func (j *SequencePruningJob) Start() error {
	if _, err := commands.NewPruneOrderSequencesCommand(j.retention); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sequence pruning job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce prunes immediately and reports how many counters were removed.
func (j *SequencePruningJob) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	cmd, err := commands.NewPruneOrderSequencesCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Sequence pruning misconfigured", "error", err)
		return 0, err
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Sequence pruning failed", "error", err)
		return 0, err
	}

	j.logger.InfoContext(ctx, "Sequence pruning finished", "removed", removed)
	return removed, nil
}

// Stop stops the scheduler and waits for a running prune to finish.
func (j *SequencePruningJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sequence pruning job stopped")
}
