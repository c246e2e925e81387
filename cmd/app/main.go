package main

import (
	"context"
	"log/slog"
	"os"

	"GameCatalogAPI/internal/config"
	"GameCatalogAPI/internal/db"
	"GameCatalogAPI/internal/model"
	"GameCatalogAPI/internal/repository"
	"GameCatalogAPI/internal/services"
	"GameCatalogAPI/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// default bootstrap account
const (
	seedUserName     = "Diego"
	seedUserEmail    = "diego@email.com"
	seedUserPassword = "1234"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	// ======================
	// STORES
	// ======================
	var (
		games repository.GameRepository
		users repository.UserRepository
	)
	if cfg.DatabaseDSN != "" {
		if err := db.Migrate(ctx, cfg.DatabaseDSN); err != nil {
			logger.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		pool, err := db.Connect(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		games = repository.NewPostgresGameRepository(pool)
		users = repository.NewPostgresUserRepository(pool)
	} else {
		logger.Info("DATABASE_DSN not set, using in-memory store")
		memGames := repository.NewMemoryGameRepository()
		seedCatalog(ctx, memGames)
		games = memGames
		users = repository.NewMemoryUserRepository()
	}

	if err := seedUser(ctx, users); err != nil {
		logger.Error("seeding bootstrap user failed", "error", err)
		os.Exit(1)
	}

	// ======================
	// SERVICES
	// ======================
	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.TokenValidity)
	authSvc := services.NewAuthService(users, tokens)
	gameSvc := services.NewGameService(games)

	// ======================
	// SERVER
	// ======================
	e := newRouter(cfg, logger, authSvc, gameSvc, tokens)
	logger.Info("starting server", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// seedUser creates the bootstrap account on first run. The password is
// stored as a bcrypt hash, never in plain text.
func seedUser(ctx context.Context, users repository.UserRepository) error {
	if _, err := users.FindByEmail(ctx, seedUserEmail); err == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, &model.User{
		Name:         seedUserName,
		Email:        seedUserEmail,
		PasswordHash: string(hash),
	})
	return err
}

// seedCatalog fills the in-memory store with a few sample games so a
// database-less run serves a non-empty list. The Postgres backend gets the
// same rows from a migration.
func seedCatalog(ctx context.Context, games repository.GameRepository) {
	seed := []model.Game{
		{Title: "Call of Duty MW", Year: 2019, Price: 60},
		{Title: "Sea of Thieves", Year: 2018, Price: 40},
		{Title: "Minecraft", Year: 2012, Price: 20},
	}
	for i := range seed {
		_, _ = games.Create(ctx, &seed[i])
	}
}
