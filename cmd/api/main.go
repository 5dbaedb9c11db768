package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"status-generic/config"
	"status-generic/internal/account"
	accountapi "status-generic/internal/api/account"
	"status-generic/internal/api/healthcheck"
	"status-generic/internal/database"
	"status-generic/internal/middleware"
	"status-generic/pkg/logger"
)

func main() {
	st := config.Init("config.yaml")
	if st.HasErrors() {
		logger.Status(st, "%v: invalid configuration", config.ModuleServer)
		logger.Fatal(st.Err(), "%v: cannot start", config.ModuleServer)
	}
	cfg := st.Result()

	if err := logger.SetLevel(string(cfg.LogLevel)); err != nil {
		logger.Warn("%v: %v", config.ModuleServer, err)
	}

	store, err := newStore(cfg)
	if err != nil {
		logger.Fatal(err, "%v: cannot open account store", config.ModuleServer)
	}

	app := fiber.New(fiber.Config{
		AppName:     cfg.Server.AppName,
		BodyLimit:   cfg.Server.BodyLimit,
		Concurrency: cfg.Server.Concurrency,
	})

	middleware.Register(app)

	// routes
	healthcheck.RegisterRoutes(app)
	accountapi.RegisterRoutes(app, accountapi.NewHandler(account.NewService(store)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	if err := app.Listen(addr); err != nil {
		logger.Error(err, "server error")
	}
}

// newStore uses MySQL when it is enabled and keeps accounts in memory
// otherwise.
func newStore(cfg config.Config) (account.Store, error) {
	if !cfg.Database.Enabled {
		logger.Info("%v: database disabled, accounts are kept in memory", config.ModuleServer)
		return account.NewMemoryStore(), nil
	}

	db, err := database.GetDB()
	if err != nil {
		return nil, err
	}

	repo := account.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}
