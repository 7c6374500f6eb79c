// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/olympics-app/auth"
	"github.com/danielhkuo/olympics-app/cliparse"
	"github.com/danielhkuo/olympics-app/db"
	"github.com/danielhkuo/olympics-app/models"
)

// TestSessionSecret signs session cookies in tests
const TestSessionSecret = "test-session-secret"

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir and is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, filepath.Join(t.TempDir(), "olympics_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	cfg := cliparse.Defaults()
	cfg.DatabaseURL = ":memory:"
	cfg.SessionSecret = TestSessionSecret
	return cfg
}

// NewTestSessions returns a session manager matching GetTestConfig
func NewTestSessions() *auth.SessionManager {
	cfg := GetTestConfig()
	return auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, false)
}

func insert(t *testing.T, conn *sql.DB, what, query string, args ...any) int64 {
	t.Helper()

	res, err := conn.Exec(query, args...)
	if err != nil {
		t.Fatalf("Failed to create test %s: %v", what, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read %s id: %v", what, err)
	}
	return id
}

// CreateTestPerson inserts a person with a fixed height and weight
func CreateTestPerson(t *testing.T, conn *sql.DB, fullName, gender string) int64 {
	t.Helper()
	return insert(t, conn, "person", `
		INSERT INTO person (full_name, gender, height, weight)
		VALUES (?, ?, 180, 75)
	`, fullName, gender)
}

// CreateTestGames inserts a Games edition, e.g. (2016, "Summer")
func CreateTestGames(t *testing.T, conn *sql.DB, year int, season string) int64 {
	t.Helper()
	return insert(t, conn, "games", `
		INSERT INTO games (games_year, games_name, season)
		VALUES (?, ?, ?)
	`, year, strconv.Itoa(year)+" "+season, season)
}

// CreateTestCompetitor enters a person into a Games
func CreateTestCompetitor(t *testing.T, conn *sql.DB, personID, gamesID int64, age int) int64 {
	t.Helper()
	return insert(t, conn, "competitor", `
		INSERT INTO games_competitor (games_id, person_id, age)
		VALUES (?, ?, ?)
	`, gamesID, personID, age)
}

// CreateTestEvent inserts a sport and one of its events, returning the event id
func CreateTestEvent(t *testing.T, conn *sql.DB, sportName, eventName string) int64 {
	t.Helper()
	sportID := insert(t, conn, "sport", `INSERT INTO sport (sport_name) VALUES (?)`, sportName)
	return insert(t, conn, "event", `
		INSERT INTO event (sport_id, event_name)
		VALUES (?, ?)
	`, sportID, eventName)
}

// CreateTestMedals inserts Gold, Silver and Bronze and returns their ids by name
func CreateTestMedals(t *testing.T, conn *sql.DB) map[string]int64 {
	t.Helper()

	ids := make(map[string]int64, 3)
	for _, name := range []string{models.MedalGold, models.MedalSilver, models.MedalBronze} {
		ids[name] = insert(t, conn, "medal", `INSERT INTO medal (medal_name) VALUES (?)`, name)
	}
	return ids
}

// AddTestParticipation links a competitor to an event. medalID 0 stores NULL.
func AddTestParticipation(t *testing.T, conn *sql.DB, competitorID, eventID, medalID int64) {
	t.Helper()

	var medal any
	if medalID > 0 {
		medal = medalID
	}
	_, err := conn.Exec(`
		INSERT INTO competitor_event (competitor_id, event_id, medal_id)
		VALUES (?, ?, ?)
	`, competitorID, eventID, medal)
	if err != nil {
		t.Fatalf("Failed to create test participation: %v", err)
	}
}

// CountParticipations counts competitor_event rows of a competitor
func CountParticipations(t *testing.T, conn *sql.DB, competitorID int64) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM competitor_event WHERE competitor_id = ?`, competitorID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count participations: %v", err)
	}
	return n
}

// SessionCookie returns a valid session cookie for username
func SessionCookie(t *testing.T, sessions *auth.SessionManager, username string) *http.Cookie {
	t.Helper()

	token, expires, err := sessions.Issue(username)
	if err != nil {
		t.Fatalf("Failed to issue session: %v", err)
	}
	return &http.Cookie{Name: auth.CookieName, Value: token, Expires: expires.Add(time.Second)}
}

// MakeFormRequest creates a POST request with a url-encoded body
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertLocation checks a redirect target
func AssertLocation(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if got := w.Header().Get("Location"); got != expected {
		t.Errorf("Expected redirect to %q, got %q", expected, got)
	}
}

// AssertContains checks that the response body contains each fragment
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("Expected body to contain %q", f)
		}
	}
}
