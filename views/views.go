// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/models"
)

// Page names
const (
	PageIndex              = "index"
	PagePrivacy            = "privacy"
	PageSportspeople       = "sportspeople"
	PageSportspersonEvents = "sportsperson_events"
	PageAddParticipation   = "add_participation"
	PageLogin              = "login"
	PageRegister           = "register"
	PageError              = "error"
	PageNotFound           = "not_found"
)

var pageNames = []string{
	PageIndex, PagePrivacy, PageSportspeople, PageSportspersonEvents,
	PageAddParticipation, PageLogin, PageRegister, PageError, PageNotFound,
}

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"measure": func(v *float64) string {
		if v == nil {
			return "-"
		}
		return humanize.Ftoa(*v)
	},
	"intOr": func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	},
	"id64": func(v *int64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatInt(*v, 10)
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// pages is built once at startup and only read afterwards
var pages = parsePages()

func parsePages() map[string]*template.Template {
	m := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		m[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(
			templateFS, "templates/layout.html", "templates/"+name+".html",
		))
	}
	return m
}

// Render executes a page inside the layout and writes it with status.
// Output is buffered so a template error never leaves a half-written page.
func Render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	t, ok := pages[page]
	if !ok {
		slog.Error("unknown page", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	username, _ := auth.UserFromContext(r.Context())

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", models.Layout{
		Title:    title,
		Username: username,
		Content:  content,
	})
	if err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "page", page, "error", err)
	}
}

// StaticHandler serves the embedded assets under /static/
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
