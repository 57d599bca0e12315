package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const defaultInterval = time.Hour

// Scanner is the interface the poller drives. A scan must be idempotent:
// the poller may invoke it more often than reminders are due.
type Scanner interface {
	Scan(ctx context.Context, asOf time.Time) (int, error)
}

// ReminderPoller runs the reminder scan on a fixed interval. Task-mutation
// notifications are synchronous by contract; this poller only serves the
// time-driven reminder rule.
type ReminderPoller struct {
	scanner  Scanner
	interval time.Duration
	log      zerolog.Logger
}

// NewReminderPoller creates a poller. If interval <= 0, defaultInterval is used.
func NewReminderPoller(scanner Scanner, interval time.Duration, log zerolog.Logger) *ReminderPoller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &ReminderPoller{scanner: scanner, interval: interval, log: log}
}

// Start launches the polling goroutine. It stops when ctx is cancelled. An
// initial scan runs immediately so restarts never miss a due day.
func (p *ReminderPoller) Start(ctx context.Context) {
	go p.run(ctx)
}

func (p *ReminderPoller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.scan(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.scan(ctx)
		}
	}
}

func (p *ReminderPoller) scan(ctx context.Context) {
	emitted, err := p.scanner.Scan(ctx, time.Now().UTC())
	if err != nil {
		p.log.Error().Err(err).Msg("reminder scan failed")
		return
	}
	p.log.Debug().Int("emitted", emitted).Msg("reminder scan complete")
}
