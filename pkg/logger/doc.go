// Package logger provides a small factory over log/slog with environment
// presets.
//
// The factory produces a *slog.Logger configured through functional options:
// output format (JSON for production aggregation, text for development),
// level, destination writer and static attributes attached to every record.
//
//	log := logger.New(logger.WithProduction("subscriptions"))
//	log.Info("subscription activated", slog.String("id", sub.ID.String()))
package logger
