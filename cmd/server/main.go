package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/contactform"
	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	DevEmailDir string `env:"DEV_EMAIL_DIR" envDefault:"./email-output"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Env, "contactform"))
	logger.SetAsDefault(log)

	var sender email.Sender
	if appCfg.Env == "production" {
		var emailCfg email.Config
		config.MustLoad(&emailCfg)
		sender = email.MustNewEmailJS(emailCfg, email.WithLogger(log))
	} else {
		sender = email.NewDevSender(appCfg.DevEmailDir)
		log.Info("using development sender", slog.String("dir", appCfg.DevEmailDir))
	}

	ctrl := contactform.New(sender, contactform.WithLogger(log))
	handler := contactform.NewHandler(ctrl, log)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), handler.Routes()); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
