// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Medal names as stored in the medal table
const (
	MedalGold   = "Gold"
	MedalSilver = "Silver"
	MedalBronze = "Bronze"
)

// NoMedal is displayed for a participation that did not win a medal
const NoMedal = "none"

// Listing defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 30
)

// Reference data

type Person struct {
	ID       int64
	FullName string
	Gender   string
	Height   *float64
	Weight   *float64
}

type Game struct {
	ID     int64
	Year   int
	Season string
}

type Competitor struct {
	ID       int64
	PersonID int64
	GamesID  int64
	Age      *int
}

type Sport struct {
	ID   int64
	Name string
}

type Event struct {
	ID      int64
	SportID int64
	Name    string
}

type Medal struct {
	ID   int64
	Name string
}

// CompetitorEvent is one event entry of a competitor.
// A nil MedalID means no medal was won.
type CompetitorEvent struct {
	CompetitorID int64
	EventID      int64
	MedalID      *int64
}

// View records

// SportspersonRow is one line of the sportspeople listing
type SportspersonRow struct {
	SportspersonID         int64
	FullName               string
	Weight                 *float64
	Height                 *float64
	Gender                 string
	GoldMedals             int
	SilverMedals           int
	BronzeMedals           int
	NumberOfParticipations int
}

// SportspersonEventRow is one participation on the event detail page.
// CompetitorID, EventID and MedalID form the delete key.
type SportspersonEventRow struct {
	CompetitorID int64
	EventID      int64
	MedalID      *int64
	SportName    string
	EventName    string
	Olympiad     *int
	Season       string
	AgeAtEvent   *int
	Medal        string
}

// Deletable reports whether the row can be addressed by the delete endpoint
func (r SportspersonEventRow) Deletable() bool {
	return r.MedalID != nil && *r.MedalID > 0
}

// SportspeoplePage is the view model of the listing page
type SportspeoplePage struct {
	People      []SportspersonRow
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int
	PagesToShow []int
}

// SportspersonEventsPage is the view model of the event detail page
type SportspersonEventsPage struct {
	SportspersonID int64
	Name           string
	Events         []SportspersonEventRow
}

// SelectOption is one entry of a form dropdown
type SelectOption struct {
	Value int64
	Text  string
}

// ParticipationForm holds the submitted values of the add participation form
type ParticipationForm struct {
	SelectedEventID    int64
	SelectedOlympiadID int64
	SelectedMedalID    int64
	AgeAtEvent         *int
}

// AddParticipationPage is the view model of the add participation form
type AddParticipationPage struct {
	SportspersonID int64
	Form           ParticipationForm
	Events         []SelectOption
	Olympiads      []SelectOption
	Medals         []SelectOption

	// Errors maps a form field name to its message. The empty key holds
	// errors that are not tied to one field.
	Errors map[string]string
}

// HasErrors reports whether any validation message is set
func (p AddParticipationPage) HasErrors() bool {
	return len(p.Errors) > 0
}

// Account pages

type LoginPage struct {
	Username  string
	ReturnURL string
	Error     string
}

type RegisterPage struct {
	Username string
	Error    string
}

// ErrorPage is rendered for unexpected failures
type ErrorPage struct {
	RequestID string
	Message   string
}

// Layout wraps every page with the signed-in user name
type Layout struct {
	Title    string
	Username string
	Content  any
}
