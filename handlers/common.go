// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/metrics"
	"github.com/danielhkuo/olympics-app/models"
	"github.com/danielhkuo/olympics-app/views"
)

// serverError records a failed store operation and renders the error page
func serverError(w http.ResponseWriter, r *http.Request, m *metrics.Metrics, operation string, err error) {
	m.StoreError(operation)
	renderServerError(w, r, operation, err)
}

// renderServerError logs err under a fresh request id and shows that id
// to the user so the failure can be reported
func renderServerError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	requestID := auth.NewRequestID()
	slog.Error("request failed",
		"operation", operation,
		"request_id", requestID,
		"path", r.URL.Path,
		"error", err,
	)

	views.Render(w, r, http.StatusInternalServerError, views.PageError, "Error", models.ErrorPage{
		RequestID: requestID,
	})
}

func notFound(w http.ResponseWriter, r *http.Request, message string) {
	views.Render(w, r, http.StatusNotFound, views.PageNotFound, "Not found", models.ErrorPage{
		Message: message,
	})
}
