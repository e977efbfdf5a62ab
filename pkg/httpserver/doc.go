// Package httpserver wraps net/http's server with environment-driven
// configuration, graceful shutdown, and signal handling.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server exited", slog.Any("error", err))
//	}
package httpserver
