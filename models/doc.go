// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain rows, view models and form types.

# Reference Data

Rows of the seeded Olympic tables:

  - Person: an athlete (name, gender, height, weight)
  - Game: one Games edition (year + season)
  - Competitor: a person's entry in one Games, with age
  - Sport, Event: events grouped by sport
  - Medal: Gold, Silver, Bronze
  - CompetitorEvent: one event entry of a competitor, medal optional

# View Models

Flat projections rendered by the templates:

  - SportspersonRow / SportspeoplePage: paginated listing with medal counts
  - SportspersonEventRow / SportspersonEventsPage: a person's participations
  - AddParticipationPage: form values, dropdown options, validation errors
  - LoginPage, RegisterPage, ErrorPage

# Constants

Medal names:

	MedalGold   = "Gold"
	MedalSilver = "Silver"
	MedalBronze = "Bronze"

A participation without a medal is shown as NoMedal ("none").
*/
package models
