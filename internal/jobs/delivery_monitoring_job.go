package jobs

import (
	"context"
	"log/slog"
	"time"

	"glassgo/internal/core/application/monitoring"
	"glassgo/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DeliveryMonitoringJob periodically sweeps active deliveries and raises a
// warning alert for every delivery that has not reported progress within the
// staleness threshold. Terminal deliveries are excluded by the repository
// query and are never alerted on.
type DeliveryMonitoringJob struct {
	repository ports.DeliveryRepository
	monitor    *monitoring.Service
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryMonitoringJob creates the staleness sweep job.
// staleAfter controls how long an active delivery may stay silent before a
// warning alert is raised.
func NewDeliveryMonitoringJob(
	repository ports.DeliveryRepository,
	monitor *monitoring.Service,
	staleAfter time.Duration,
	logger *slog.Logger,
) *DeliveryMonitoringJob {
	return &DeliveryMonitoringJob{
		repository: repository,
		monitor:    monitor,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "delivery_monitoring_job"),
	}
}

// Start begins the monitoring sweep, running every minute.
func (j *DeliveryMonitoringJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery monitoring job started (running every minute)",
		"stale_after", j.staleAfter.String())
	return nil
}

// Stop stops the monitoring sweep.
func (j *DeliveryMonitoringJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery monitoring job stopped")
}

func (j *DeliveryMonitoringJob) sweep() {
	ctx := context.Background()

	active, err := j.repository.GetAllActive(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery monitoring sweep failed", "error", err)
		return
	}

	now := time.Now()
	for _, d := range active {
		if now.Sub(d.UpdatedAt()) > j.staleAfter {
			j.monitor.GenerateImpactAlert(d, monitoring.SeverityWarning)
		}
	}
}
