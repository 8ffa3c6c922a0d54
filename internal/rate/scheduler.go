package rate

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler drives periodic refresh cycles in-process. Interval 0 disables
// it; deployments with an external cron hit the update endpoint instead.
type Scheduler struct {
	refresher       Refresher
	refreshInterval time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(refresher Refresher, refreshInterval time.Duration) *Scheduler {
	return &Scheduler{refresher: refresher, refreshInterval: refreshInterval}
}

func (s *Scheduler) Enabled() bool {
	return s.refreshInterval > 0
}

func (s *Scheduler) Start(ctx context.Context) error {
	if !s.Enabled() {
		logrus.Info("Refresh scheduler disabled, relying on external cron")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		res := s.refresher.Refresh(jobCtx)
		if !res.Success {
			logrus.Errorf("Scheduled refresh %s failed: %s", execID, res.Error)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
