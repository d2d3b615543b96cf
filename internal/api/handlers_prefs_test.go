package api

import (
	"net/http"
	"testing"
)

func TestWeekStartPreferenceDefaultsToSunday(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "pref-default@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := doJSONRequest(t, app, http.MethodGet, "/api/preferences/week-start", authCookie, nil)
	defer response.Body.Close()

	payload := map[string]string{}
	decodeJSONBody(t, response.Body, &payload)
	if payload["weekStart"] != "sunday" {
		t.Fatalf("expected default week start sunday, got %q", payload["weekStart"])
	}
}

func TestWeekStartPreferenceRoundTrips(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "pref-monday@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	putResponse := doJSONRequest(t, app, http.MethodPut, "/api/preferences/week-start", authCookie, map[string]string{"weekStart": "monday"})
	if putResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected put status 200, got %d", putResponse.StatusCode)
	}
	putResponse.Body.Close()

	getResponse := doJSONRequest(t, app, http.MethodGet, "/api/preferences/week-start", authCookie, nil)
	defer getResponse.Body.Close()

	payload := map[string]string{}
	decodeJSONBody(t, getResponse.Body, &payload)
	if payload["weekStart"] != "monday" {
		t.Fatalf("expected stored week start monday, got %q", payload["weekStart"])
	}
}

func TestWeekStartPreferenceRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "pref-invalid@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := doJSONRequest(t, app, http.MethodPut, "/api/preferences/week-start", authCookie, map[string]string{"weekStart": "wednesday"})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestSectionsPreferenceDefaultsToAllSections(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "sections-default@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := doJSONRequest(t, app, http.MethodGet, "/api/preferences/sections", authCookie, nil)
	defer response.Body.Close()

	payload := struct {
		Sections []string `json:"sections"`
	}{}
	decodeJSONBody(t, response.Body, &payload)
	if len(payload.Sections) != len(journalSections) {
		t.Fatalf("expected all sections by default, got %v", payload.Sections)
	}
}

func TestSectionsPreferenceRoundTrips(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "sections@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	putResponse := doJSONRequest(t, app, http.MethodPut, "/api/preferences/sections", authCookie, map[string]any{
		"sections": []string{"habits", "mood"},
	})
	if putResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected put status 200, got %d", putResponse.StatusCode)
	}
	putResponse.Body.Close()

	getResponse := doJSONRequest(t, app, http.MethodGet, "/api/preferences/sections", authCookie, nil)
	defer getResponse.Body.Close()

	payload := struct {
		Sections []string `json:"sections"`
	}{}
	decodeJSONBody(t, getResponse.Body, &payload)
	if len(payload.Sections) != 2 || payload.Sections[0] != "habits" || payload.Sections[1] != "mood" {
		t.Fatalf("expected stored sections, got %v", payload.Sections)
	}
}

func TestSectionsPreferenceRejectsUnknownSection(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "sections-bad@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := doJSONRequest(t, app, http.MethodPut, "/api/preferences/sections", authCookie, map[string]any{
		"sections": []string{"habits", "astrology"},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestHabitTemplatesPreferenceRoundTrips(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "templates@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	putResponse := doJSONRequest(t, app, http.MethodPut, "/api/preferences/habit-templates", authCookie, map[string]any{
		"habitTemplates": []string{" Run ", "Read"},
	})
	if putResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected put status 200, got %d", putResponse.StatusCode)
	}
	putResponse.Body.Close()

	getResponse := doJSONRequest(t, app, http.MethodGet, "/api/preferences/habit-templates", authCookie, nil)
	defer getResponse.Body.Close()

	payload := struct {
		HabitTemplates []string `json:"habitTemplates"`
	}{}
	decodeJSONBody(t, getResponse.Body, &payload)
	if len(payload.HabitTemplates) != 2 || payload.HabitTemplates[0] != "Run" {
		t.Fatalf("expected trimmed templates, got %v", payload.HabitTemplates)
	}
}

func TestHabitTemplatesPreferenceRejectsDuplicates(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "templates-dup@example.com", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "StrongPass1")

	response := doJSONRequest(t, app, http.MethodPut, "/api/preferences/habit-templates", authCookie, map[string]any{
		"habitTemplates": []string{"Run", " Run "},
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestPreferencesAreScopedPerUser(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	first := createTestUser(t, database, "pref-first@example.com", "StrongPass1")
	second := createTestUser(t, database, "pref-second@example.com", "StrongPass1")

	firstCookie := loginAndExtractAuthCookie(t, app, first.Email, "StrongPass1")
	secondCookie := loginAndExtractAuthCookie(t, app, second.Email, "StrongPass1")

	putResponse := doJSONRequest(t, app, http.MethodPut, "/api/preferences/week-start", firstCookie, map[string]string{"weekStart": "monday"})
	putResponse.Body.Close()

	response := doJSONRequest(t, app, http.MethodGet, "/api/preferences/week-start", secondCookie, nil)
	defer response.Body.Close()

	payload := map[string]string{}
	decodeJSONBody(t, response.Body, &payload)
	if payload["weekStart"] != "sunday" {
		t.Fatalf("expected second user to keep default week start, got %q", payload["weekStart"])
	}
}
