package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/email-writer-api/internal/api"
	apiMiddleware "github.com/phrazzld/email-writer-api/internal/api/middleware"
)

// setupRouter creates the chi router with middleware and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))

	emailHandler := api.NewEmailHandler(app.emailService, app.config.Server.ServiceName)

	r.Get("/", emailHandler.Status)

	// Both forms are accepted so clients do not need to follow a redirect.
	r.Post("/generate/", emailHandler.GenerateEmail)
	r.Post("/generate", emailHandler.GenerateEmail)

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
