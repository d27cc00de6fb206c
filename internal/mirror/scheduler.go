package mirror

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the mirror on a cron schedule.
type Scheduler struct {
	mirror *Mirror
	spec   string
	cron   *cron.Cron
}

// NewScheduler creates a scheduler for the given six-field cron spec,
// e.g. "0 */5 * * * *" for every five minutes.
func NewScheduler(m *Mirror, spec string) *Scheduler {
	return &Scheduler{mirror: m, spec: spec}
}

// Start registers the cron job and begins scheduling. An immediate first
// pass runs so a fresh deployment does not wait a full interval.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		s.runOnce()
	})
	if err != nil {
		return err
	}

	log.Printf("[info] operation=mirror_scheduler message=started spec=%q", s.spec)
	s.cron = c
	c.Start()

	go s.runOnce()
	return nil
}

// Stop halts scheduling, waiting for a running pass to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.mirror.Run(ctx); err != nil {
		log.Printf("[error] operation=mirror error=%v", err)
	}
}
