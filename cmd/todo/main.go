package main

import (
	"context"
	"errors"

	"todoterm/internal/config"
	"todoterm/internal/logger"
	"todoterm/internal/store"
	"todoterm/internal/tui"
	"todoterm/migrations"
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewClientLogger("todoterm", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("todoterm", cfg.Logging.Path)
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to local database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error migrating local database")
	}

	gw := store.NewGateway(db, log)
	ui := tui.New(gw, log)

	user, err := ui.AuthFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Fatal().Err(err).Msg("authentication flow error")
	}
	log.Info().Str("username", user.Username).Msg("user logged in")

	if err = ui.MainLoop(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("session loop error")
	}
}
