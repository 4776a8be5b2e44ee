// Package jobs provides scheduled background tasks for the work order service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so
// schedules are six-field expressions.
//
// # Available Jobs
//
// 1. DailyReportJob - logs order and task totals, the status distribution and per-day average completion
// 2. LogisticsAdviceJob - asks the logistics advisor about today's orders and logs the answer
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statisticsHandler, adviceHandler, jobs.Schedules{
//		Report: cfg.ReportSchedule,
//		Advice: cfg.AdviceSchedule,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs never stop on failure: errors are logged and the next tick runs as
// usual. Advisor fallbacks are logged as warnings.
package jobs
