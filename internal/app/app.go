package app

import (
	"fmt"

	"github.com/gracechapel/api/internal/config"
	"github.com/gracechapel/api/internal/db"
	"github.com/gracechapel/api/internal/repository"
	"github.com/gracechapel/api/internal/service"
	"github.com/gracechapel/api/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	SermonService   *service.SermonService
	EventService    *service.EventService
	MinistryService *service.MinistryService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	sermonRepository := repository.NewSermonRepository(database)
	eventRepository := repository.NewEventRepository(database)
	ministryRepository := repository.NewMinistryRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	attachmentService := service.NewAttachmentService(fileStorage)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	sermonService := service.NewSermonService(sermonRepository, attachmentService)
	eventService := service.NewEventService(eventRepository, attachmentService)
	ministryService := service.NewMinistryService(ministryRepository, attachmentService)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		SermonService:   sermonService,
		EventService:    eventService,
		MinistryService: ministryService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
