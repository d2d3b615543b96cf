package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marisolvale/weekling/internal/week"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	currentWeekKey := week.CanonicalKey(time.Now().In(handler.location))
	overview, err := handler.statsService.Overview(c.Context(), user.ID, currentWeekKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(overview)
}
