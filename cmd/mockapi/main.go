// Servidor de desarrollo que imita la API REST de logística con datos en memoria.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/logistica-console/internal/mockapi"
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
		Service: cfg.App.Name + "-mock-api",
	})

	store := mockapi.NewStore()
	if err := mockapi.Seed(store); err != nil {
		log.Fatal().Err(err).Msg("seed del mock")
	}
	for _, u := range mockapi.DefaultUsers {
		if u.Active {
			log.Info().Str("matricula", u.Matricula).Str("senha", u.Senha).Str("cargo", u.Cargo).Msg("usuario de desarrollo")
		}
	}

	app := mockapi.New(mockapi.Config{
		AppName:   cfg.App.Name + "-mock-api",
		JWTSecret: cfg.MockAPI.JWTSecret,
		TokenTTL:  time.Duration(cfg.MockAPI.TokenTTLMinutes) * time.Minute,
	}, store, log.Zerolog())

	go func() {
		if err := app.Listen(cfg.MockAPI.Addr()); err != nil {
			log.Error().Err(err).Msg("mock API finalizado")
		}
	}()
	log.Info().Str("addr", cfg.MockAPI.Addr()).Msg("mock API escuchando en /api")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del mock")
	}
	log.Info().Msg("mock API detenido")
}
