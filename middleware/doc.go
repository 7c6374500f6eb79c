// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Metrics

WithMetrics reports status and duration per route to a RequestObserver,
normally *metrics.Metrics:

	middleware.WithMetrics(m, "GET /sportspeople", handler)

# Sessions

WithSession wraps the whole mux and puts the signed-in username into the
request context. RequireAuth sends anonymous requests to LoginPath with a
returnUrl parameter:

	mux.HandleFunc("GET /sportspeople", middleware.RequireAuth(h.List))
	server.Handler = middleware.WithSession(sessions, mux)

# Form Helpers

	id, ok := middleware.PositiveInt(r.FormValue("competitorId"))
	size := middleware.IntOrDefault(q.Get("pageSize"), 30, 1, 200)
	middleware.SeeOther(w, r, "/sportspeople")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
