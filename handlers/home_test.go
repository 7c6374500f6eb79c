// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/olympics-app/testutil"
)

func TestHomePages(t *testing.T) {
	handler := NewHomeHandler()

	tests := []struct {
		name    string
		handle  http.HandlerFunc
		status  int
		content string
	}{
		{"index", handler.Index, http.StatusOK, "<title>Home"},
		{"privacy", handler.Privacy, http.StatusOK, "<title>Privacy Policy"},
		{"not found", handler.NotFound, http.StatusNotFound, "The page you requested does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handle(w, httptest.NewRequest(http.MethodGet, "/", nil))

			testutil.AssertStatus(t, w, tt.status)
			testutil.AssertContains(t, w, tt.content)
		})
	}
}
