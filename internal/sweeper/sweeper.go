package sweeper

import (
	"context"
	"log/slog"
	"time"
)

type holdExpirer interface {
	ExpirePending(ctx context.Context) (int, error)
}

// Sweeper periodically cancels pending bookings whose hold window has lapsed,
// freeing their slots. It is the only writer that uses the EXPIRED reason.
type Sweeper struct {
	bookings holdExpirer
	interval time.Duration
}

func New(bookings holdExpirer, interval time.Duration) *Sweeper {
	return &Sweeper{
		bookings: bookings,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled. One sweep failure is logged and the
// ticker keeps going; missed work is picked up on the next tick.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("hold sweeper started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("hold sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	expired, err := s.bookings.ExpirePending(ctx)
	if err != nil {
		slog.Error("hold sweep failed", "error", err.Error())
		return
	}
	if expired > 0 {
		slog.Info("expired pending holds", "count", expired)
	}
}
