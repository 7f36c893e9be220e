/*
Package handler provides the HTTP handlers and routing setup for the InnoEvent portal.

This file defines the main Router, applying logging, CORS, request ids and panic recovery, resolving
the caller's workspace from its cookie, and rate limiting the sign-in and sign-up endpoints.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"innoevent/internal/pkg/logx"
	"innoevent/internal/pkg/resp"
)

// Router sets up the HTTP routing table of the portal.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		logx.Debug("Health check endpoint hit")

		data := map[string]any{
			"status":     "ok",
			"service":    "InnoEvent Portal",
			"workspaces": deps.Workspaces.Len(),
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/ui", func(ui chi.Router) {
		ui.Use(WorkspaceMiddleware(deps))

		ui.Get("/view", HandleView(deps))
		ui.Post("/navigate", HandleNavigate(deps))

		ui.Route("/auth", func(auth chi.Router) {
			if deps.AuthLimiter != nil {
				auth.Use(deps.AuthLimiter.Middleware)
			}
			auth.Post("/register", HandleRegister(deps))
			auth.Post("/login", HandleLogin(deps))
			auth.Post("/logout", HandleLogout(deps))
		})

		ui.Route("/events", func(events chi.Router) {
			events.Get("/", HandleListEvents(deps))
			events.Post("/", HandleCreateEvent(deps))
			events.Post("/edit", HandleSaveEdit(deps))
			events.Post("/edit/cancel", HandleCancelEdit(deps))
			events.Post("/{id}/register", HandleRegisterForEvent(deps))
			events.Get("/{id}/edit", HandleBeginEdit(deps))
			events.Delete("/{id}", HandleDeleteEvent(deps))
		})

		ui.Delete("/registrations/{id}", HandleCancelRegistration(deps))

		ui.Get("/profile", HandleGetProfile(deps))
		ui.Put("/profile", HandleUpdateProfile(deps))

		ui.Get("/calendar", HandleCalendar(deps))
		ui.Get("/calendar.ics", HandleCalendarICS(deps))
	})

	return r
}
