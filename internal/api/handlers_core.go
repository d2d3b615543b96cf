package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marisolvale/weekling/internal/db"
	"github.com/marisolvale/weekling/internal/prefs"
	"github.com/marisolvale/weekling/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	entryService := services.NewEntryService(repositories.WeeklyEntries)

	return &Handler{
		db:           database,
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
		entryService: entryService,
		statsService: services.NewStatsService(entryService),
		prefStore:    prefs.NewFallbackStore(repositories.Preferences, nil),
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		location:     location,
	}, nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
