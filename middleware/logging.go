package middleware

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns middleware that logs interactor start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, info *Info, next Handler) error {
		logger.Info("interactor started",
			slog.String("interactor", info.Interactor),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("interactor failed",
				slog.String("interactor", info.Interactor),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("interactor completed",
				slog.String("interactor", info.Interactor),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
