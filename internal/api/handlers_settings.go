package api

import "github.com/gofiber/fiber/v2"

// ClearJournalData deletes every weekly entry belonging to the current user.
// Preferences survive so the journal keeps its layout after the wipe.
func (handler *Handler) ClearJournalData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repositories.WeeklyEntries.DeleteByUser(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear journal data")
	}
	return c.JSON(fiber.Map{"ok": true})
}
