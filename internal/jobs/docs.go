// Package jobs provides scheduled background tasks of the ordering service, built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SequencePruningJob deletes per-day order number counters older than the configured
// retention (30 days by default). Issued order numbers are unaffected: they live on
// the orders themselves, and the counter of the current day is never old enough to
// be pruned.
//
// # Usage
//
//	pruning := jobs.NewSequencePruningJob(pruneHandler, 30*24*time.Hour, "15 3 * * *", logger)
//	jobManager := jobs.NewJobManager(pruning)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules use the standard five field cron syntax evaluated in UTC, the same zone
// the order number dates use.
package jobs
