package scheduler

import (
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gofiber/fiber/v2/log"
)

// ErrNotChecked is reported by Ready before the first self-check completes.
var ErrNotChecked = errors.New("self-check has not run yet")

// Check is the job the scheduler runs.
type Check func() error

// Scheduler periodically runs the catalog self-check and keeps its result.
type Scheduler struct {
	scheduler *gocron.Scheduler
	check     Check
	onResult  func(error)
	interval  time.Duration

	mu      sync.RWMutex
	lastErr error
	ran     bool
}

// New creates a new Scheduler. onResult may be nil.
func New(interval time.Duration, check Check, onResult func(error)) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		check:     check,
		onResult:  onResult,
		interval:  interval,
	}
}

// Start runs the check once immediately and, when an interval is set,
// schedules it to repeat.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Info("scheduler: periodic self-check disabled; running once")
		s.run()
		return nil
	}

	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil && s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}

// Ready returns the error of the last self-check, or ErrNotChecked.
func (s *Scheduler) Ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ran {
		return ErrNotChecked
	}
	return s.lastErr
}

func (s *Scheduler) run() {
	err := s.check()
	if err != nil {
		log.Errorf("scheduler: self-check failed: %v", err)
	} else {
		log.Debug("scheduler: self-check passed")
	}

	s.mu.Lock()
	s.lastErr = err
	s.ran = true
	s.mu.Unlock()

	if s.onResult != nil {
		s.onResult(err)
	}
}
