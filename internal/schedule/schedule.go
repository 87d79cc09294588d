// Package schedule fires the scrape and build passes on a cron
// expression.
package schedule

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron
	spec string
	run  func() error
}

// New wires run to the standard 5-field cron expression spec.
func New(spec string, run func() error) (*Scheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	c := cron.New(cron.WithParser(parser), cron.WithChain(cron.Recover(cron.DefaultLogger)))

	s := &Scheduler{cron: c, spec: spec, run: run}
	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("cron %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) runOnce() {
	log.Printf("[schedule] run starting")
	if err := s.run(); err != nil {
		// A bad run waits for the next tick, it never stops the loop.
		log.Printf("[schedule] run failed: %v", err)
		return
	}
	log.Printf("[schedule] run finished")
}

// Start begins firing and blocks until ctx is canceled, then waits for
// any in-flight run to return before giving control back.
func (s *Scheduler) Start(ctx context.Context) {
	log.Printf("[schedule] cron %q started", s.spec)
	s.cron.Start()

	<-ctx.Done()

	stopped := s.cron.Stop()
	<-stopped.Done()
	log.Printf("[schedule] stopped")
}
