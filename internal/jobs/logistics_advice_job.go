package jobs

import (
	"context"
	"log/slog"
	"time"

	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultAdviceSchedule fires at 07:00 every day.
const DefaultAdviceSchedule = "0 0 7 * * *"

type adviceHandler interface {
	Handle(ctx context.Context, query queries.GetLogisticsAdviceQuery) (queries.LogisticsAdviceResponse, error)
}

// LogisticsAdviceJob asks the advisor about the current day's orders and
// logs the answer so dispatchers find it in the morning log.
type LogisticsAdviceJob struct {
	handler  adviceHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLogisticsAdviceJob(handler adviceHandler, schedule string, logger *slog.Logger) *LogisticsAdviceJob {
	if schedule == "" {
		schedule = DefaultAdviceSchedule
	}
	return &LogisticsAdviceJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "logistics_advice_job"),
	}
}

// Run requests advice for today once.
func (j *LogisticsAdviceJob) Run(ctx context.Context) {
	date := kernel.DateFromTime(j.now())

	query, err := queries.NewGetLogisticsAdviceQuery(date, nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Logistics advice job failed", "error", err)
		return
	}

	advice, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Logistics advice job failed", "date", date.String(), "error", err)
		return
	}

	if advice.Fallback {
		j.logger.WarnContext(ctx, "Logistics advice unavailable", "date", date.String(), "text", advice.Text)
		return
	}
	j.logger.InfoContext(ctx, "Logistics advice", "date", date.String(), "text", advice.Text)
}

func (j *LogisticsAdviceJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Logistics advice job started", "schedule", j.schedule)
	return nil
}

func (j *LogisticsAdviceJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Logistics advice job stopped")
}
