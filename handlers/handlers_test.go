// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/olympics-app/cliparse"
	"github.com/danielhkuo/olympics-app/db"
	"github.com/danielhkuo/olympics-app/metrics"
	"github.com/danielhkuo/olympics-app/models"
	"github.com/danielhkuo/olympics-app/repository"
	"github.com/danielhkuo/olympics-app/testutil"
)

type testEnv struct {
	conn    *sql.DB
	store   *repository.Store
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return &testEnv{
		conn:    conn,
		store:   repository.New(conn, db.DialectSQLite),
		cfg:     testutil.GetTestConfig(),
		metrics: metrics.New(),
	}
}

// seeded ids of a small data set
type fixture struct {
	person     int64
	competitor int64
	games      int64
	event      int64
	medals     map[string]int64
	loner      int64 // person without competitor rows
}

func (e *testEnv) seed(t *testing.T) fixture {
	t.Helper()

	f := fixture{medals: testutil.CreateTestMedals(t, e.conn)}
	f.games = testutil.CreateTestGames(t, e.conn, 2016, "Summer")
	f.event = testutil.CreateTestEvent(t, e.conn, "Swimming", "200m Butterfly")
	f.person = testutil.CreateTestPerson(t, e.conn, "Michael Phelps", "M")
	f.competitor = testutil.CreateTestCompetitor(t, e.conn, f.person, f.games, 31)
	f.loner = testutil.CreateTestPerson(t, e.conn, "Zed Nobody", "M")

	testutil.AddTestParticipation(t, e.conn, f.competitor, f.event, f.medals[models.MedalGold])
	return f
}

func withID(req *http.Request, id int64) *http.Request {
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	return req
}

func TestListSportspeople(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	handler := NewSportspeopleHandler(env.store, env.cfg, env.metrics)

	req := httptest.NewRequest(http.MethodGet, "/sportspeople", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w,
		"Michael Phelps",
		"Zed Nobody",
		"2 sportspeople, page 1 of 1",
		"/sportspeople/1/events",
	)
}

func TestListSportspeople_Pagination(t *testing.T) {
	env := newTestEnv(t)
	for i := range 95 {
		testutil.CreateTestPerson(t, env.conn, fmt.Sprintf("Athlete %03d", i), "F")
	}
	handler := NewSportspeopleHandler(env.store, env.cfg, env.metrics)

	tests := []struct {
		name     string
		query    string
		contains []string
		absent   []string
	}{
		{
			name:     "defaults",
			query:    "",
			contains: []string{"page 1 of 4", "Athlete 000", "Athlete 029", "page=2&pageSize=30", "Next"},
			absent:   []string{"Athlete 030", "Previous"},
		},
		{
			name:     "middle page",
			query:    "?page=5&pageSize=10",
			contains: []string{"page 5 of 10", "Athlete 040", "Athlete 049", "page=3&pageSize=10", "page=7&pageSize=10", "page=10&pageSize=10"},
			absent:   []string{"Athlete 039", "Athlete 050", "page=2&pageSize=10\">2", "page=8&pageSize=10\">8"},
		},
		{
			name:     "past the end",
			query:    "?page=15&pageSize=10",
			contains: []string{"page 15 of 10", "No sportspeople on this page."},
			absent:   []string{"Athlete"},
		},
		{
			name:     "bad page falls back to 1",
			query:    "?page=-3&pageSize=10",
			contains: []string{"page 1 of 10", "Athlete 000"},
		},
		{
			name:     "oversized page size falls back to default",
			query:    "?pageSize=100000",
			contains: []string{"page 1 of 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sportspeople"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.List(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			testutil.AssertContains(t, w, tt.contains...)
			for _, s := range tt.absent {
				if body := w.Body.String(); strings.Contains(body, s) {
					t.Errorf("Expected body not to contain %q", s)
				}
			}
		})
	}
}

func TestListSportspeople_Empty(t *testing.T) {
	env := newTestEnv(t)
	handler := NewSportspeopleHandler(env.store, env.cfg, env.metrics)

	req := httptest.NewRequest(http.MethodGet, "/sportspeople", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "0 sportspeople, page 1 of 0", "<strong>1</strong>")
}

func TestListSportspeople_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	handler := NewSportspeopleHandler(env.store, env.cfg, env.metrics)
	env.conn.Close()

	req := httptest.NewRequest(http.MethodGet, "/sportspeople", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	testutil.AssertContains(t, w, "Request ID:")
}

func TestSportspersonEvents(t *testing.T) {
	env := newTestEnv(t)
	f := env.seed(t)
	handler := NewSportspeopleHandler(env.store, env.cfg, env.metrics)

	tests := []struct {
		name     string
		id       string
		status   int
		contains []string
	}{
		{"known person", strconv.FormatInt(f.person, 10), http.StatusOK,
			[]string{"Michael Phelps", "Swimming", "200m Butterfly", "2016", "Gold", `name="medalId"`}},
		{"person without entries", strconv.FormatInt(f.loner, 10), http.StatusOK,
			[]string{"Zed Nobody", "No participations recorded."}},
		{"unknown person", "9999", http.StatusNotFound, []string{"Sportsperson not found."}},
		{"non-numeric id", "abc", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sportspeople/x/events", nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			handler.Events(w, req)

			testutil.AssertStatus(t, w, tt.status)
			testutil.AssertContains(t, w, tt.contains...)
		})
	}
}

func TestSportspersonEvents_NoMedalNotDeletable(t *testing.T) {
	env := newTestEnv(t)
	f := env.seed(t)
	// Replace the gold entry with one without a medal
	if _, err := env.conn.Exec(`UPDATE competitor_event SET medal_id = NULL`); err != nil {
		t.Fatalf("update: %v", err)
	}
	handler := NewSportspeopleHandler(env.store, env.cfg, env.metrics)

	w := httptest.NewRecorder()
	handler.Events(w, withID(httptest.NewRequest(http.MethodGet, "/", nil), f.person))

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "<td>none</td>")
	if strings.Contains(w.Body.String(), `name="medalId"`) {
		t.Error("Expected no delete form for a row without medal")
	}
}

// counterValue reads an unlabelled counter from the metrics registry
func counterValue(t *testing.T, env *testEnv, name string) float64 {
	t.Helper()

	families, err := env.metrics.Registry().Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name && len(mf.GetMetric()) > 0 {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}
