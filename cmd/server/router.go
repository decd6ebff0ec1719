package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khairulanwar/birthday-engine/internal/config"
	"github.com/khairulanwar/birthday-engine/internal/handler"
	"github.com/khairulanwar/birthday-engine/internal/middleware"
)

func setupRouter(h *handler.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	// Automation trigger, guarded by the shared secret.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AutomationAuth(cfg.Automation.Secret))
		r.Get("/api/automation/birthdays", h.RunBirthdayAutomation)
	})

	// Tenant session endpoints.
	r.Group(func(r chi.Router) {
		r.Use(middleware.TenantAuth(cfg.Auth.JWTSecret))
		r.Post("/api/messages/birthday", h.SendBirthdayMessage)
		r.Post("/api/messages/birthday/bulk", h.SendBirthdayMessagesBulk)
		r.Get("/api/messages", h.GetMessages)
	})

	// Operational controls for the recurring trigger.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AutomationAuth(cfg.Automation.Secret))
		r.Post("/api/scheduler/start", h.StartScheduler)
		r.Post("/api/scheduler/stop", h.StopScheduler)
	})

	return r
}
