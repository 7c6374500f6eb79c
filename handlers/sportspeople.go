// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/danielhkuo/olympics-app/cliparse"
	"github.com/danielhkuo/olympics-app/metrics"
	"github.com/danielhkuo/olympics-app/middleware"
	"github.com/danielhkuo/olympics-app/models"
	"github.com/danielhkuo/olympics-app/pagination"
	"github.com/danielhkuo/olympics-app/repository"
	"github.com/danielhkuo/olympics-app/views"
)

type SportspeopleHandler struct {
	store   *repository.Store
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewSportspeopleHandler(store *repository.Store, cfg cliparse.Config, m *metrics.Metrics) *SportspeopleHandler {
	return &SportspeopleHandler{store: store, cfg: cfg, metrics: m}
}

// List handles GET /sportspeople?page=&pageSize=
// A page past the end renders an empty table.
func (h *SportspeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := middleware.IntOrDefault(q.Get("page"), models.DefaultPage, 1, math.MaxInt32)
	pageSize := middleware.IntOrDefault(q.Get("pageSize"), h.cfg.PageSize, 1, h.cfg.MaxPageSize)

	// Calculate total items and pages
	total, err := h.store.CountPeople(r.Context())
	if err != nil {
		serverError(w, r, h.metrics, "count_people", err)
		return
	}
	totalPages := pagination.TotalPages(total, pageSize)

	people, err := h.store.ListSportspeople(r.Context(), pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		serverError(w, r, h.metrics, "list_sportspeople", err)
		return
	}

	views.Render(w, r, http.StatusOK, views.PageSportspeople, "Sportspeople", models.SportspeoplePage{
		People:      people,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		PagesToShow: pagination.Window(page, totalPages),
	})
}

// Events handles GET /sportspeople/{id}/events
func (h *SportspeopleHandler) Events(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.PositiveInt(r.PathValue("id"))
	if !ok {
		notFound(w, r, "Sportsperson not found.")
		return
	}

	person, err := h.store.GetPerson(r.Context(), personID)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(w, r, "Sportsperson not found.")
		return
	}
	if err != nil {
		serverError(w, r, h.metrics, "get_person", err)
		return
	}

	events, err := h.store.ListPersonEvents(r.Context(), personID)
	if err != nil {
		serverError(w, r, h.metrics, "list_person_events", err)
		return
	}

	views.Render(w, r, http.StatusOK, views.PageSportspersonEvents, person.FullName, models.SportspersonEventsPage{
		SportspersonID: personID,
		Name:           person.FullName,
		Events:         events,
	})
}
