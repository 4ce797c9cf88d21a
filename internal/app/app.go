// Package app wires configuration, the store, and the services into one
// container that the router and main consume.
package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/tinselworks/noel/internal/config"
	"github.com/tinselworks/noel/internal/db"
	"github.com/tinselworks/noel/internal/repository"
	"github.com/tinselworks/noel/internal/service"
	"github.com/tinselworks/noel/internal/storage"
)

type App struct {
	Config *config.Config
	DB     *sqlx.DB

	AuthService     *service.AuthService
	WishService     *service.WishService
	TodoService     *service.TodoService
	TimelineService *service.TimelineService
	GalleryService  *service.GalleryService
	MusicService    *service.MusicService
	StatsService    *service.StatsService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	userRepository := repository.NewUserRepository(database)
	wishRepository := repository.NewWishRepository(database)
	todoRepository := repository.NewTodoRepository(database)
	timelineRepository := repository.NewTimelineRepository(database)
	galleryRepository := repository.NewGalleryRepository(database)
	songRepository := repository.NewSongRepository(database)
	statsRepository := repository.NewStatsRepository(database)

	emailService := service.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AppName, cfg.IsDevelopment())
	statsService := service.NewStatsService(statsRepository)
	timelineService := service.NewTimelineService(timelineRepository, cfg.ContentPath)

	a := &App{
		Config:          cfg,
		DB:              database,
		AuthService:     service.NewAuthService(userRepository, emailService, statsService, cfg.JWTSecret, cfg.JWTExpiry),
		WishService:     service.NewWishService(wishRepository, statsService),
		TodoService:     service.NewTodoService(todoRepository, statsService),
		TimelineService: timelineService,
		GalleryService:  service.NewGalleryService(galleryRepository, store),
		MusicService:    service.NewMusicService(songRepository),
		StatsService:    statsService,
	}

	// Timeline entries live as markdown on disk; sync them into the store on
	// boot so the API serves the current content set.
	err = timelineService.Sync()
	if err != nil {
		slog.Warn("timeline content sync failed", "error", err)
	}

	return a, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
