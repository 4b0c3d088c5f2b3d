package bootstrap

import (
	"context"

	"venuebook/internal/pkg/config"
	"venuebook/internal/sweeper"
	"venuebook/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(StartSweeper),
)

func NewSweeper(cfg config.Config, bookingCommands commands.BookingCommands) *sweeper.Sweeper {
	return sweeper.New(bookingCommands, cfg.Booking.SweepInterval)
}

// StartSweeper runs the hold sweep loop for the life of the process.
func StartSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go s.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
