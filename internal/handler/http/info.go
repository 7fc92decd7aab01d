package http

import (
	"net/http"
	"time"
)

// apiInfo answers the unauthenticated root route with a directory of the
// API's available versions and endpoints.
func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"name":               "Habit Tracker API",
		"version":            h.apiVersion,
		"available_versions": []string{"v1"},
		"documentation":      "/api/documentation",
		"endpoints": map[string]any{
			"v1": map[string]any{
				"auth": []string{
					"POST /api/v1/register",
					"POST /api/v1/login",
					"POST /api/v1/logout",
					"GET /api/v1/user",
					"GET /api/v1/check",
				},
				"habits": []string{
					"GET /api/v1/habits",
					"POST /api/v1/habits",
					"GET /api/v1/habits/{id}",
					"PUT /api/v1/habits/{id}",
					"PATCH /api/v1/habits/{id}",
					"DELETE /api/v1/habits/{id}",
				},
			},
		},
	}

	h.writeSuccess(w, r, data, "Habit Tracker API", http.StatusOK)
}

// versionTest is a protected smoke-test route confirming that the v1 group
// and its auth middleware are wired correctly.
func (h *Handler) versionTest(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"version":   h.apiVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	h.writeSuccess(w, r, data, "API V1 is working correctly", http.StatusOK)
}
