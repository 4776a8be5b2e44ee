package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the scheduled jobs. Empty values
// select the defaults.
type Schedules struct {
	Report string
	Advice string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dailyReportJob     *DailyReportJob
	logisticsAdviceJob *LogisticsAdviceJob
}

func NewJobManager(
	statisticsHandler statisticsHandler,
	adviceHandler adviceHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyReportJob:     NewDailyReportJob(statisticsHandler, schedules.Report, logger),
		logisticsAdviceJob: NewLogisticsAdviceJob(adviceHandler, schedules.Advice, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily report job: %w", err)
	}

	if err := jm.logisticsAdviceJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dailyReportJob.Stop()
		return fmt.Errorf("failed to start logistics advice job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.logisticsAdviceJob.Stop()
	jm.dailyReportJob.Stop()
}
