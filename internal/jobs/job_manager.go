package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"glassgo/internal/core/application/monitoring"
	"glassgo/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryMonitoringJob *DeliveryMonitoringJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	repository ports.DeliveryRepository,
	monitor *monitoring.Service,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryMonitoringJob: NewDeliveryMonitoringJob(repository, monitor, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryMonitoringJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery monitoring job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryMonitoringJob.Stop()
}
