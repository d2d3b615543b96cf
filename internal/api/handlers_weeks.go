package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/marisolvale/weekling/internal/journal"
	"github.com/marisolvale/weekling/internal/services"
	"github.com/marisolvale/weekling/internal/week"
)

func (handler *Handler) ListWeeks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	keys, err := handler.entryService.ListWeekKeys(c.Context(), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list weeks")
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(fiber.Map{"weeks": keys})
}

func (handler *Handler) BatchWeeks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	keys := splitWeekKeysParam(c.Query("keys"))
	if len(keys) == 0 {
		return apiError(c, fiber.StatusBadRequest, "keys query parameter is required")
	}
	for _, key := range keys {
		if !week.IsCanonicalKey(key) {
			return apiError(c, fiber.StatusBadRequest, "invalid week key: "+key)
		}
	}

	records, err := handler.entryService.FetchMany(c.Context(), user.ID, keys)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weeks")
	}
	return c.JSON(fiber.Map{"weeks": records})
}

func (handler *Handler) GetWeek(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	weekKey := c.Params("key")
	record, found, err := handler.entryService.Fetch(c.Context(), user.ID, weekKey)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeekKey) {
			return apiError(c, fiber.StatusBadRequest, "invalid week key")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load week")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "week not found")
	}
	return c.JSON(record)
}

func (handler *Handler) PutWeek(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	record := journal.Record{}
	if err := c.BodyParser(&record); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	weekKey := c.Params("key")
	if err := handler.entryService.Upsert(c.Context(), user.ID, weekKey, record); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWeekKey):
			return apiError(c, fiber.StatusBadRequest, "invalid week key")
		case errors.Is(err, services.ErrEntrySaveFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to save week")
		}
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(journal.Normalize(record))
}

func (handler *Handler) WeekSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	weekKey := c.Params("key")
	record, _, err := handler.entryService.Fetch(c.Context(), user.ID, weekKey)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeekKey) {
			return apiError(c, fiber.StatusBadRequest, "invalid week key")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load week")
	}
	return c.JSON(services.SummarizeWeek(record))
}

func splitWeekKeysParam(raw string) []string {
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		key := strings.TrimSpace(part)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
