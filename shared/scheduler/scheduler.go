package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Job is a unit of periodic background work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs jobs on cron schedules until its context is cancelled.
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{
		// Prevent overlapping runs
		cron: cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

func (s *Scheduler) Add(ctx context.Context, schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(ctx); err != nil {
			log.Printf("Error running scheduled job %s: %v", job.Name(), err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job %s: %w", job.Name(), err)
	}
	log.Printf("Scheduled %s with schedule: %s", job.Name(), schedule)
	return nil
}

// Start begins running scheduled jobs and stops them when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	go func() {
		<-ctx.Done()
		log.Printf("Scheduler stopped")
		s.cron.Stop()
	}()
}
