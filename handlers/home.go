// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/olympics-app/views"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index handles GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, http.StatusOK, views.PageIndex, "Home", nil)
}

// Privacy handles GET /privacy
func (h *HomeHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, http.StatusOK, views.PagePrivacy, "Privacy Policy", nil)
}

// NotFound handles every unmatched path
func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r, "")
}
