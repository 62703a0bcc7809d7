package services

import (
	"time"

	"github.com/madflojo/tasks"
	"go.uber.org/zap"
)

const (
	cleanupTaskID   = "transaction-cleanup"
	cleanupInterval = time.Hour
	cleanupMaxAge   = 24 * time.Hour
)

// SchedulerService owns the background eviction of old transaction
// records, keeping the tracker map bounded.
type SchedulerService interface {
	DropTask(taskID string)
}

func NewSchedulerService(scheduler *tasks.Scheduler, status StatusService, log *zap.Logger) (SchedulerService, error) {
	s := &schedulerService{
		service:   service{status: status, log: log},
		scheduler: scheduler,
	}

	err := scheduler.AddWithID(cleanupTaskID, &tasks.Task{
		Interval: cleanupInterval,
		TaskFunc: func() error {
			status.Cleanup(cleanupMaxAge)
			return nil
		},
		ErrFunc: func(err error) {
			log.Error("transaction cleanup task", zap.Error(err))
		},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

type schedulerService struct {
	service
	scheduler *tasks.Scheduler
}

func (s *schedulerService) DropTask(taskID string) {
	s.scheduler.Del(taskID)
}
