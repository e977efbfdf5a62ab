// Package logger provides a small factory around log/slog with
// environment-aware defaults.
//
// Development loggers use text output at debug level; production loggers use
// JSON output at info level with service/env attributes attached to every
// record.
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "contactform"))
//	logger.SetAsDefault(log)
package logger
