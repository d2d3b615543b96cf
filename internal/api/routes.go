package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	weeks := api.Group("/weeks", handler.AuthRequired)
	weeks.Get("", handler.ListWeeks)
	weeks.Get("/batch", handler.BatchWeeks)
	weeks.Get("/:key", handler.GetWeek)
	weeks.Put("/:key", handler.PutWeek)
	weeks.Get("/:key/summary", handler.WeekSummary)

	preferences := api.Group("/preferences", handler.AuthRequired)
	preferences.Get("/week-start", handler.GetWeekStartPreference)
	preferences.Put("/week-start", handler.PutWeekStartPreference)
	preferences.Get("/sections", handler.GetSectionsPreference)
	preferences.Put("/sections", handler.PutSectionsPreference)
	preferences.Get("/habit-templates", handler.GetHabitTemplatesPreference)
	preferences.Put("/habit-templates", handler.PutHabitTemplatesPreference)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/clear-data", handler.ClearJournalData)
}
