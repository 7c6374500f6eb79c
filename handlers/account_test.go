// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/testutil"
)

func newAccountHandler(t *testing.T) (*AccountHandler, *auth.FileUserStore) {
	t.Helper()

	users, err := auth.NewFileUserStore(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("NewFileUserStore: %v", err)
	}
	if _, err := users.Register("coach", "correct-horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return NewAccountHandler(users, testutil.NewTestSessions()), users
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	handler, _ := newAccountHandler(t)

	tests := []struct {
		name       string
		form       url.Values
		status     int
		location   string
		wantCookie bool
	}{
		{
			name:       "valid credentials with return url",
			form:       url.Values{"username": {"coach"}, "password": {"correct-horse"}, "returnUrl": {"/sportspeople?page=3"}},
			status:     http.StatusSeeOther,
			location:   "/sportspeople?page=3",
			wantCookie: true,
		},
		{
			name:       "external return url is ignored",
			form:       url.Values{"username": {"coach"}, "password": {"correct-horse"}, "returnUrl": {"//evil.example"}},
			status:     http.StatusSeeOther,
			location:   "/sportspeople",
			wantCookie: true,
		},
		{
			name:   "wrong password",
			form:   url.Values{"username": {"coach"}, "password": {"nope"}},
			status: http.StatusUnauthorized,
		},
		{
			name:   "unknown user",
			form:   url.Values{"username": {"ghost"}, "password": {"correct-horse"}},
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, testutil.MakeFormRequest("/login", tt.form))

			testutil.AssertStatus(t, w, tt.status)
			if tt.location != "" {
				testutil.AssertLocation(t, w, tt.location)
			}

			cookie := sessionCookie(w)
			if tt.wantCookie && cookie == nil {
				t.Error("Expected session cookie")
			}
			if !tt.wantCookie {
				if cookie != nil {
					t.Error("Expected no session cookie")
				}
				testutil.AssertContains(t, w, "Invalid username or password.")
			}
		})
	}
}

func TestLoginForm(t *testing.T) {
	handler, _ := newAccountHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/login?returnUrl=%2Fsportspeople%2F4%2Fevents", nil)
	w := httptest.NewRecorder()
	handler.LoginForm(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, `name="returnUrl" value="/sportspeople/4/events"`)

	// Already signed in: go straight to the target
	req = httptest.NewRequest(http.MethodGet, "/login?returnUrl=%2Fprivacy", nil)
	req = req.WithContext(auth.WithUser(req.Context(), "coach"))
	w = httptest.NewRecorder()
	handler.LoginForm(w, req)

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	testutil.AssertLocation(t, w, "/privacy")
}

func TestLogout(t *testing.T) {
	handler, _ := newAccountHandler(t)

	w := httptest.NewRecorder()
	handler.Logout(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	testutil.AssertLocation(t, w, "/")

	cookie := sessionCookie(w)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("Expected expired session cookie, got %+v", cookie)
	}
}

func TestRegister(t *testing.T) {
	handler, users := newAccountHandler(t)

	tests := []struct {
		name    string
		form    url.Values
		status  int
		message string
	}{
		{"new user", url.Values{"username": {"runner"}, "password": {"long-enough"}, "confirmPassword": {"long-enough"}}, http.StatusSeeOther, ""},
		{"mismatched confirmation", url.Values{"username": {"jumper"}, "password": {"long-enough"}, "confirmPassword": {"different"}}, http.StatusUnprocessableEntity, "Passwords do not match."},
		{"taken name", url.Values{"username": {"Coach"}, "password": {"long-enough"}, "confirmPassword": {"long-enough"}}, http.StatusConflict, "That username is already taken."},
		{"short password", url.Values{"username": {"thrower"}, "password": {"short"}, "confirmPassword": {"short"}}, http.StatusUnprocessableEntity, "Password must be at least 8 characters."},
		{"bad username", url.Values{"username": {"a b"}, "password": {"long-enough"}, "confirmPassword": {"long-enough"}}, http.StatusUnprocessableEntity, "Username must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Register(w, testutil.MakeFormRequest("/register", tt.form))

			testutil.AssertStatus(t, w, tt.status)
			if tt.message != "" {
				testutil.AssertContains(t, w, tt.message)
			}
		})
	}

	if !users.Exists("runner") {
		t.Error("Expected runner to be registered")
	}
	if users.Exists("jumper") || users.Exists("thrower") {
		t.Error("Expected failed registrations not to be stored")
	}
}
