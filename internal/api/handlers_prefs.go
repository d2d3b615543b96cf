package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/marisolvale/weekling/internal/models"
	"github.com/marisolvale/weekling/internal/prefs"
)

// journalSections are the toggleable blocks of the weekly page.
var journalSections = []string{"habits", "mood", "meals", "events", "grateful", "comment"}

func (handler *Handler) GetWeekStartPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"weekStart": string(prefs.WeekStart(handler.prefStore, user.ID))})
}

func (handler *Handler) PutWeekStartPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := struct {
		WeekStart string `json:"weekStart" form:"week_start"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	startDay, err := prefs.SetWeekStart(handler.prefStore, user.ID, strings.TrimSpace(input.WeekStart))
	if err != nil {
		if err == prefs.ErrInvalidWeekStart {
			return apiError(c, fiber.StatusBadRequest, "week start must be sunday or monday")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save preference")
	}
	return c.JSON(fiber.Map{"weekStart": string(startDay)})
}

func (handler *Handler) GetSectionsPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sections := journalSections
	value, found, err := handler.prefStore.Get(user.ID, models.PrefVisibleSections)
	if err == nil && found {
		stored := []string{}
		if json.Unmarshal([]byte(value), &stored) == nil {
			sections = stored
		}
	}
	return c.JSON(fiber.Map{"sections": sections})
}

func (handler *Handler) PutSectionsPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := struct {
		Sections []string `json:"sections"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	for _, section := range input.Sections {
		if !isJournalSection(section) {
			return apiError(c, fiber.StatusBadRequest, "unknown section: "+section)
		}
	}

	encoded, err := json.Marshal(input.Sections)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save preference")
	}
	if err := handler.prefStore.Set(user.ID, models.PrefVisibleSections, string(encoded)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save preference")
	}
	return c.JSON(fiber.Map{"sections": input.Sections})
}

func (handler *Handler) GetHabitTemplatesPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	templates := []string{}
	value, found, err := handler.prefStore.Get(user.ID, models.PrefHabitTemplates)
	if err == nil && found {
		if json.Unmarshal([]byte(value), &templates) != nil {
			templates = []string{}
		}
	}
	return c.JSON(fiber.Map{"habitTemplates": templates})
}

func (handler *Handler) PutHabitTemplatesPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := struct {
		HabitTemplates []string `json:"habitTemplates"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	templates := make([]string, 0, len(input.HabitTemplates))
	seen := make(map[string]bool)
	for _, template := range input.HabitTemplates {
		name := strings.TrimSpace(template)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "habit template names must not be blank")
		}
		if seen[name] {
			return apiError(c, fiber.StatusBadRequest, "duplicate habit template: "+name)
		}
		seen[name] = true
		templates = append(templates, name)
	}
	encoded, err := json.Marshal(templates)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save preference")
	}
	if err := handler.prefStore.Set(user.ID, models.PrefHabitTemplates, string(encoded)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save preference")
	}
	return c.JSON(fiber.Map{"habitTemplates": templates})
}

func isJournalSection(name string) bool {
	for _, section := range journalSections {
		if section == name {
			return true
		}
	}
	return false
}
