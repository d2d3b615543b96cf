package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/marisolvale/weekling/internal/db"
	"github.com/marisolvale/weekling/internal/prefs"
	"github.com/marisolvale/weekling/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories
	authService  *services.AuthService
	entryService *services.EntryService
	statsService *services.StatsService
	prefStore    prefs.Store
	secretKey    []byte
	cookieSecure bool
	location     *time.Location
}
