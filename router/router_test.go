// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/db"
	"github.com/danielhkuo/olympics-app/metrics"
	"github.com/danielhkuo/olympics-app/models"
	"github.com/danielhkuo/olympics-app/repository"
	"github.com/danielhkuo/olympics-app/testutil"
)

type testServer struct {
	handler  http.Handler
	sessions *auth.SessionManager
	t        *testing.T
}

func newTestServer(t *testing.T) (*testServer, *repository.Store) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	store := repository.New(conn, db.DialectSQLite)

	users, err := auth.NewFileUserStore(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("NewFileUserStore: %v", err)
	}

	sessions := testutil.NewTestSessions()
	handler := NewRouter(store, testutil.GetTestConfig(), sessions, users, metrics.New())
	return &testServer{handler: handler, sessions: sessions, t: t}, store
}

// do serves req, signed in as username unless it is empty
func (s *testServer) do(req *http.Request, username string) *httptest.ResponseRecorder {
	if username != "" {
		req.AddCookie(testutil.SessionCookie(s.t, s.sessions, username))
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	w := srv.do(httptest.NewRequest("GET", "/health", nil), "")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestPublicRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	testCases := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/privacy", http.StatusOK},
		{"/login", http.StatusOK},
		{"/register", http.StatusOK},
		{"/static/site.css", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/no/such/page", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := srv.do(httptest.NewRequest("GET", tc.path, nil), "")
			if w.Code != tc.status {
				t.Errorf("Expected %d for %s, got %d", tc.status, tc.path, w.Code)
			}
		})
	}
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/sportspeople?page=2"},
		{"GET", "/sportspeople/1/events"},
		{"GET", "/sportspeople/1/participations/new"},
		{"POST", "/sportspeople/1/participations/new"},
		{"POST", "/participations/delete"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := srv.do(httptest.NewRequest(tc.method, tc.path, nil), "")

			if w.Code != http.StatusFound {
				t.Fatalf("Expected 302, got %d", w.Code)
			}
			want := "/login?returnUrl=" + url.QueryEscape(tc.path)
			if got := w.Header().Get("Location"); got != want {
				t.Errorf("Expected redirect to %q, got %q", want, got)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},               // Only GET is defined
		{"DELETE", "/sportspeople"},       // Only GET is defined
		{"PUT", "/sportspeople/1/events"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := srv.do(httptest.NewRequest(tc.method, tc.path, nil), "coach")
			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestSignedInFlow(t *testing.T) {
	srv, store := newTestServer(t)
	conn := store.DB()

	medals := testutil.CreateTestMedals(t, conn)
	games := testutil.CreateTestGames(t, conn, 2012, "Summer")
	event := testutil.CreateTestEvent(t, conn, "Rowing", "Single Sculls")
	person := testutil.CreateTestPerson(t, conn, "Mahe Drysdale", "M")
	competitor := testutil.CreateTestCompetitor(t, conn, person, games, 33)
	id := strconv.FormatInt(person, 10)

	// Listing
	w := srv.do(httptest.NewRequest("GET", "/sportspeople", nil), "coach")
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Mahe Drysdale", "coach")

	// Add participation through the path parameter
	form := url.Values{
		"SelectedEventId":    {strconv.FormatInt(event, 10)},
		"SelectedOlympiadId": {strconv.FormatInt(games, 10)},
		"SelectedMedalId":    {strconv.FormatInt(medals[models.MedalGold], 10)},
	}
	w = srv.do(testutil.MakeFormRequest("/sportspeople/"+id+"/participations/new", form), "coach")
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	testutil.AssertLocation(t, w, "/sportspeople/"+id+"/events")

	w = srv.do(httptest.NewRequest("GET", "/sportspeople/"+id+"/events", nil), "coach")
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Single Sculls", "Gold")

	// Delete it again
	del := url.Values{
		"competitorId": {strconv.FormatInt(competitor, 10)},
		"eventId":      {strconv.FormatInt(event, 10)},
		"medalId":      {strconv.FormatInt(medals[models.MedalGold], 10)},
	}
	w = srv.do(testutil.MakeFormRequest("/participations/delete", del), "coach")
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	testutil.AssertLocation(t, w, "/sportspeople")

	if got := testutil.CountParticipations(t, conn, competitor); got != 0 {
		t.Errorf("Expected no participations left, got %d", got)
	}

	// Requests are counted per route pattern
	w = srv.do(httptest.NewRequest("GET", "/metrics", nil), "")
	testutil.AssertContains(t, w,
		`olympics_participations_added_total 1`,
		`olympics_participations_deleted_total 1`,
		`route="POST /participations/delete"`,
	)
}

func TestRegisterThenBrowse(t *testing.T) {
	srv, _ := newTestServer(t)

	form := url.Values{"username": {"newcoach"}, "password": {"long-enough"}, "confirmPassword": {"long-enough"}}
	w := srv.do(testutil.MakeFormRequest("/register", form), "")
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("Expected session cookie after registration")
	}

	req := httptest.NewRequest("GET", "/sportspeople", nil)
	req.AddCookie(cookie)
	w = srv.do(req, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "newcoach") {
		t.Error("Expected layout to greet the new user")
	}
}
