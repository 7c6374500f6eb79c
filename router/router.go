// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/cliparse"
	"github.com/danielhkuo/olympics-app/handlers"
	"github.com/danielhkuo/olympics-app/metrics"
	"github.com/danielhkuo/olympics-app/middleware"
	"github.com/danielhkuo/olympics-app/repository"
	"github.com/danielhkuo/olympics-app/views"
)

func NewRouter(store *repository.Store, cfg cliparse.Config, sessions *auth.SessionManager, users *auth.FileUserStore, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	accountHandler := handlers.NewAccountHandler(users, sessions)
	sportspeopleHandler := handlers.NewSportspeopleHandler(store, cfg, m)
	participationHandler := handlers.NewParticipationHandler(store, cfg, m)

	// page registers a logged and instrumented route
	page := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithMetrics(m, pattern, middleware.WithLogging(h)))
	}
	// private additionally requires a signed-in user
	private := func(pattern string, h http.HandlerFunc) {
		page(pattern, middleware.RequireAuth(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Operations
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("GET /static/", views.StaticHandler())

	// Public pages
	page("GET /{$}", homeHandler.Index)
	page("GET /privacy", homeHandler.Privacy)

	// Account
	page("GET /login", accountHandler.LoginForm)
	page("POST /login", accountHandler.Login)
	page("GET /register", accountHandler.RegisterForm)
	page("POST /register", accountHandler.Register)
	page("POST /logout", accountHandler.Logout)

	// Sportspeople (signed-in users only)
	private("GET /sportspeople", sportspeopleHandler.List)
	private("GET /sportspeople/{id}/events", sportspeopleHandler.Events)
	private("GET /sportspeople/{id}/participations/new", participationHandler.NewForm)
	private("POST /sportspeople/{id}/participations/new", participationHandler.Create)
	private("POST /participations/delete", participationHandler.Delete)

	// Everything else
	page("GET /", homeHandler.NotFound)

	return middleware.WithSession(sessions, mux)
}
