package jobs

import (
	"context"
	"log/slog"

	"workorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule fires at 20:00 every day.
const DefaultReportSchedule = "0 0 20 * * *"

type statisticsHandler interface {
	Handle(ctx context.Context, query queries.GetStatisticsQuery) (queries.StatisticsResponse, error)
}

// DailyReportJob logs the reporting aggregates on a schedule.
type DailyReportJob struct {
	handler  statisticsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailyReportJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule falls back to DefaultReportSchedule.
func NewDailyReportJob(handler statisticsHandler, schedule string, logger *slog.Logger) *DailyReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &DailyReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "daily_report_job"),
	}
}

// Run computes the statistics once and logs them.
func (j *DailyReportJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetStatisticsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		return
	}

	distribution := make([]any, 0, 2*len(stats.StatusDistribution))
	for status, n := range stats.StatusDistribution {
		distribution = append(distribution, status.String(), n)
	}

	j.logger.InfoContext(ctx, "Daily report",
		"total_orders", stats.TotalOrders,
		"total_tasks", stats.TotalTasks,
		slog.Group("statuses", distribution...),
	)

	for _, avg := range stats.DateAverages {
		j.logger.InfoContext(ctx, "Average completion", "date", avg.Date, "percent", avg.AvgCompletion)
	}
}

func (j *DailyReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "schedule", j.schedule)
	return nil
}

func (j *DailyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}
