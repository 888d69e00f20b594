package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/movilog-app/internal/application/auth"
	"github.com/jhoicas/movilog-app/internal/application/catalog"
	"github.com/jhoicas/movilog-app/internal/application/movements"
	"github.com/jhoicas/movilog-app/internal/application/transfer"
	"github.com/jhoicas/movilog-app/internal/application/users"
	"github.com/jhoicas/movilog-app/internal/infrastructure/device"
	"github.com/jhoicas/movilog-app/internal/infrastructure/rest"
	"github.com/jhoicas/movilog-app/internal/interfaces/cli"
	"github.com/jhoicas/movilog-app/pkg/config"
	"github.com/jhoicas/movilog-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	// adaptadores de infraestructura
	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)
	catalogGW := rest.NewCatalogGateway(client)
	movementGW := rest.NewMovementGateway(client)
	authGW := rest.NewAuthGateway(client)
	userGW := rest.NewUserGateway(client)
	sessionStore := device.NewFileSessionStore(cfg.Session.Path)
	camera := device.NewSpoolCamera(cfg.Camera.Dir)

	// casos de uso
	authUC := auth.NewUseCase(authGW, sessionStore)
	if err := authUC.Restore(); err != nil {
		log.Warn().Err(err).Msg("no fue posible restaurar la sesión")
	}
	catalogUC := catalog.NewUseCase(catalogGW)
	transferUC := transfer.NewUseCase(catalogUC, movementGW)
	registry := movements.NewRegistry(movementGW)
	transition := movements.NewTransitionController(registry, movementGW, camera, authUC)
	usersUC := users.NewUseCase(userGW)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(cli.Deps{
		Log:        log,
		Auth:       authUC,
		Catalog:    catalogUC,
		Transfer:   transferUC,
		Registry:   registry,
		Transition: transition,
		Users:      usersUC,
	})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
