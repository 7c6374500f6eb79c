// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/middleware"
	"github.com/danielhkuo/olympics-app/models"
	"github.com/danielhkuo/olympics-app/views"
)

// Where a successful sign-in lands when no returnUrl was given
const defaultLanding = "/sportspeople"

type AccountHandler struct {
	users    *auth.FileUserStore
	sessions *auth.SessionManager
}

func NewAccountHandler(users *auth.FileUserStore, sessions *auth.SessionManager) *AccountHandler {
	return &AccountHandler{users: users, sessions: sessions}
}

// LoginForm handles GET /login
func (h *AccountHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	returnURL := middleware.SafeReturnURL(r.URL.Query().Get("returnUrl"), defaultLanding)

	if _, ok := auth.UserFromContext(r.Context()); ok {
		middleware.SeeOther(w, r, returnURL)
		return
	}

	views.Render(w, r, http.StatusOK, views.PageLogin, "Login", models.LoginPage{
		ReturnURL: returnURL,
	})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form.", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	returnURL := middleware.SafeReturnURL(r.PostFormValue("returnUrl"), defaultLanding)

	if err := h.users.Authenticate(username, password); err != nil {
		slog.Info("login failed", "username", username, "ip", middleware.GetClientIP(r))
		views.Render(w, r, http.StatusUnauthorized, views.PageLogin, "Login", models.LoginPage{
			Username:  username,
			ReturnURL: returnURL,
			Error:     "Invalid username or password.",
		})
		return
	}

	if err := h.sessions.SetCookie(w, username); err != nil {
		renderServerError(w, r, "issue_session", err)
		return
	}

	slog.Info("user signed in", "username", username)
	middleware.SeeOther(w, r, returnURL)
}

// Logout handles POST /logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	if username, ok := auth.UserFromContext(r.Context()); ok {
		slog.Info("user signed out", "username", username)
	}
	middleware.SeeOther(w, r, "/")
}

// RegisterForm handles GET /register
func (h *AccountHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	views.Render(w, r, http.StatusOK, views.PageRegister, "Register", models.RegisterPage{})
}

// Register handles POST /register and signs the new user in
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form.", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	fail := func(status int, message string) {
		views.Render(w, r, status, views.PageRegister, "Register", models.RegisterPage{
			Username: username,
			Error:    message,
		})
	}

	if password != r.PostFormValue("confirmPassword") {
		fail(http.StatusUnprocessableEntity, "Passwords do not match.")
		return
	}

	user, err := h.users.Register(username, password)
	switch {
	case errors.Is(err, auth.ErrUserExists):
		fail(http.StatusConflict, "That username is already taken.")
		return
	case errors.Is(err, auth.ErrInvalidUsername), errors.Is(err, auth.ErrWeakPassword):
		fail(http.StatusUnprocessableEntity, capitalize(err.Error())+".")
		return
	case err != nil:
		renderServerError(w, r, "register_user", err)
		return
	}

	if err := h.sessions.SetCookie(w, user.Username); err != nil {
		renderServerError(w, r, "issue_session", err)
		return
	}

	slog.Info("user registered", "username", user.Username)
	middleware.SeeOther(w, r, defaultLanding)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
