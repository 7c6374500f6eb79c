// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the page controllers of the Olympics app.

# Handler Types

Each handler is a struct holding its dependencies:

  - HomeHandler: home, privacy and not-found pages
  - SportspeopleHandler: paginated listing and per-person event detail
  - ParticipationHandler: add and delete competitor events
  - AccountHandler: login, logout and registration

Handlers are created via constructor functions:

	people := handlers.NewSportspeopleHandler(store, cfg, m)

# Listing

GET /sportspeople reads page and pageSize from the query string. A bad
page falls back to 1 and a pageSize outside [1, MaxPageSize] falls back to
the configured default. Pages past the end render an empty table.

# Participations

Adding resolves the person's first competitor record and inserts one
competitor_event row. The Olympiad selected in the form is validated but
not stored, so entries always attach to that first record.

Deleting requires three positive ids and removes every matching row.
Matching nothing is not an error; both outcomes redirect to the listing.

# Errors

Invalid ids on delete return 400. An unknown person on the detail page
returns 404. Store failures are logged with a request id, counted in
metrics and rendered as the error page with status 500.
*/
package handlers
