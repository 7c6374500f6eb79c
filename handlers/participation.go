// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/olympics-app/cliparse"
	"github.com/danielhkuo/olympics-app/metrics"
	"github.com/danielhkuo/olympics-app/middleware"
	"github.com/danielhkuo/olympics-app/models"
	"github.com/danielhkuo/olympics-app/repository"
	"github.com/danielhkuo/olympics-app/views"
)

// Form field names
const (
	fieldEvent    = "SelectedEventId"
	fieldOlympiad = "SelectedOlympiadId"
	fieldMedal    = "SelectedMedalId"
	fieldAge      = "AgeAtEvent"
)

const msgPersonNotFound = "The specified sportsperson could not be found."

type ParticipationHandler struct {
	store   *repository.Store
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewParticipationHandler(store *repository.Store, cfg cliparse.Config, m *metrics.Metrics) *ParticipationHandler {
	return &ParticipationHandler{store: store, cfg: cfg, metrics: m}
}

// NewForm handles GET /sportspeople/{id}/participations/new
func (h *ParticipationHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.PositiveInt(r.PathValue("id"))
	if !ok {
		notFound(w, r, "Sportsperson not found.")
		return
	}

	page := models.AddParticipationPage{SportspersonID: personID}
	if err := h.loadOptions(r.Context(), &page); err != nil {
		serverError(w, r, h.metrics, "load_participation_options", err)
		return
	}

	views.Render(w, r, http.StatusOK, views.PageAddParticipation, "Add participation", page)
}

// Create handles POST /sportspeople/{id}/participations/new
func (h *ParticipationHandler) Create(w http.ResponseWriter, r *http.Request) {
	personID, ok := middleware.PositiveInt(r.PathValue("id"))
	if !ok {
		notFound(w, r, "Sportsperson not found.")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form.", http.StatusBadRequest)
		return
	}

	form, errs := parseParticipationForm(r)
	page := models.AddParticipationPage{
		SportspersonID: personID,
		Form:           form,
		Errors:         errs,
	}

	// Repopulate dropdowns, also used to check the choices
	if err := h.loadOptions(r.Context(), &page); err != nil {
		serverError(w, r, h.metrics, "load_participation_options", err)
		return
	}
	validateChoices(&page)

	if page.HasErrors() {
		views.Render(w, r, http.StatusUnprocessableEntity, views.PageAddParticipation, "Add participation", page)
		return
	}

	competitor, err := h.store.FirstCompetitor(r.Context(), personID)
	if errors.Is(err, repository.ErrNotFound) {
		page.Errors = map[string]string{"": msgPersonNotFound}
		views.Render(w, r, http.StatusUnprocessableEntity, views.PageAddParticipation, "Add participation", page)
		return
	}
	if err != nil {
		serverError(w, r, h.metrics, "first_competitor", err)
		return
	}

	// Known defect kept as-is: SelectedOlympiadID is validated but not
	// stored. The row always goes to the person's first competitor record,
	// whichever Games was chosen.
	medalID := form.SelectedMedalID
	err = h.store.AddParticipation(r.Context(), models.CompetitorEvent{
		CompetitorID: competitor.ID,
		EventID:      form.SelectedEventID,
		MedalID:      &medalID,
	})
	if err != nil {
		serverError(w, r, h.metrics, "add_participation", err)
		return
	}
	h.metrics.ParticipationAdded()

	slog.Info("participation added",
		"person_id", personID,
		"competitor_id", competitor.ID,
		"event_id", form.SelectedEventID,
		"medal_id", form.SelectedMedalID,
	)

	middleware.SeeOther(w, r, "/sportspeople/"+strconv.FormatInt(personID, 10)+"/events")
}

// Delete handles POST /participations/delete
// Matching no row is not an error.
func (h *ParticipationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid parameters.", http.StatusBadRequest)
		return
	}

	competitorID, ok1 := middleware.PositiveInt(r.FormValue("competitorId"))
	eventID, ok2 := middleware.PositiveInt(r.FormValue("eventId"))
	medalID, ok3 := middleware.PositiveInt(r.FormValue("medalId"))
	if !ok1 || !ok2 || !ok3 {
		http.Error(w, "Invalid parameters.", http.StatusBadRequest)
		return
	}

	n, err := h.store.DeleteParticipation(r.Context(), competitorID, eventID, medalID)
	if err != nil {
		serverError(w, r, h.metrics, "delete_participation", err)
		return
	}
	h.metrics.ParticipationsDeleted(n)

	slog.Info("participation deleted",
		"competitor_id", competitorID,
		"event_id", eventID,
		"medal_id", medalID,
		"rows", n,
	)

	middleware.SeeOther(w, r, "/sportspeople")
}

func (h *ParticipationHandler) loadOptions(ctx context.Context, page *models.AddParticipationPage) error {
	var err error
	if page.Events, err = h.store.EventOptions(ctx); err != nil {
		return err
	}
	if page.Olympiads, err = h.store.GamesOptions(ctx); err != nil {
		return err
	}
	if page.Medals, err = h.store.MedalOptions(ctx); err != nil {
		return err
	}
	return nil
}

// parseParticipationForm reads the posted fields. Missing or malformed
// selections are reported per field.
func parseParticipationForm(r *http.Request) (models.ParticipationForm, map[string]string) {
	var form models.ParticipationForm
	errs := map[string]string{}

	var ok bool
	if form.SelectedEventID, ok = middleware.PositiveInt(r.PostFormValue(fieldEvent)); !ok {
		errs[fieldEvent] = "Please select an event."
	}
	if form.SelectedOlympiadID, ok = middleware.PositiveInt(r.PostFormValue(fieldOlympiad)); !ok {
		errs[fieldOlympiad] = "Please select an Olympiad."
	}
	if form.SelectedMedalID, ok = middleware.PositiveInt(r.PostFormValue(fieldMedal)); !ok {
		errs[fieldMedal] = "Please select a medal."
	}

	if raw := strings.TrimSpace(r.PostFormValue(fieldAge)); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age <= 0 {
			errs[fieldAge] = "Age at event must be a positive number."
		} else {
			form.AgeAtEvent = &age
		}
	}

	return form, errs
}

// validateChoices requires each selection to be one of the offered options
func validateChoices(page *models.AddParticipationPage) {
	if page.Errors == nil {
		page.Errors = map[string]string{}
	}

	check := func(field string, value int64, options []models.SelectOption, message string) {
		if _, failed := page.Errors[field]; failed {
			return
		}
		for _, opt := range options {
			if opt.Value == value {
				return
			}
		}
		page.Errors[field] = message
	}

	check(fieldEvent, page.Form.SelectedEventID, page.Events, "Please select an event.")
	check(fieldOlympiad, page.Form.SelectedOlympiadID, page.Olympiads, "Please select an Olympiad.")
	check(fieldMedal, page.Form.SelectedMedalID, page.Medals, "Please select a medal.")
}
