package price

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCatalogRefreshInterval = 5 * time.Minute
	DefaultSweepInterval          = 5 * time.Minute
	refreshTimeout                = 10 * time.Second
)

// Sweeper drops idle rate limiter buckets and reports how many remain.
type Sweeper interface {
	Sweep() int
}

// Scheduler keeps the crypto catalog warm and sweeps idle rate limiter buckets.
type Scheduler struct {
	catalog *CatalogCache
	limiter Sweeper

	catalogRefreshInterval time.Duration
	sweepInterval          time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

var ErrSchedulerRunning = errors.New("scheduler already running")

func (s *Scheduler) Start(ctx context.Context) error {
	if s.running() {
		return ErrSchedulerRunning
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	refreshJob := func(jobCtx context.Context) {
		execID := uuid.NewString()
		reqCtx, cancel := context.WithTimeout(jobCtx, refreshTimeout)
		defer cancel()
		if refreshErr := s.catalog.Refresh(reqCtx); refreshErr != nil {
			logrus.WithError(refreshErr).WithField("exec_id", execID).Error("Catalog refresh job failed")
		}
	}

	sweepJob := func() {
		remaining := s.limiter.Sweep()
		logrus.WithField("buckets", remaining).Debug("Rate limiter swept")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.catalogRefreshInterval),
		gocron.NewTask(refreshJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	if s.limiter != nil {
		_, err = scheduler.NewJob(
			gocron.DurationJob(s.sweepInterval),
			gocron.NewTask(sweepJob),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			_ = scheduler.Shutdown()
			return err
		}
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
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
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(catalog *CatalogCache, limiter Sweeper, catalogRefreshInterval time.Duration, sweepInterval time.Duration) *Scheduler {
	if catalogRefreshInterval <= 0 {
		catalogRefreshInterval = DefaultCatalogRefreshInterval
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	return &Scheduler{
		catalog:                catalog,
		limiter:                limiter,
		catalogRefreshInterval: catalogRefreshInterval,
		sweepInterval:          sweepInterval,
	}
}
