package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/logistica-console/internal/infrastructure/api"
	infrapdf "github.com/jhoicas/logistica-console/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/logistica-console/internal/interfaces/http"
	"github.com/jhoicas/logistica-console/internal/session"
	"github.com/jhoicas/logistica-console/pkg/config"
	"github.com/jhoicas/logistica-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola")

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		Connector: api.NewConnector(cfg.API.BaseURL, cfg.API.Timeout, log.Zerolog()),
		Cookie: session.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
		},
		Renderer: infrapdf.NewReportPDFGenerator(),
		Timeout:  cfg.API.Timeout,
		Log:      log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
