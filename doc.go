// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Olympics app server.

The app browses Olympic athletes: a paginated listing with medal and
participation counts, the event entries of each person, and forms to add
or delete participations. Pages are server-rendered HTML behind a cookie
login.

# Starting the Server

A session secret is required; everything else has a default:

	OLYMPICS_SESSION_SECRET=change-me go run .

Or with flags:

	go run . -p 8080 -d olympics.db -session-secret change-me

# Configuration

Settings are layered (low to high): defaults, YAML file (-c or
OLYMPICS_CONFIG), OLYMPICS_* environment (a .env file is loaded first),
then flags.

  - OLYMPICS_PORT (-p): Server port (default: 8080)
  - OLYMPICS_DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: olympics.db)
  - OLYMPICS_DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - OLYMPICS_USERS_FILE (-u): JSON file of accounts (default: users.json)
  - OLYMPICS_SESSION_SECRET (-session-secret): HMAC key for session cookies
  - OLYMPICS_SESSION_TTL: Sliding session lifetime (default: 30m)
  - OLYMPICS_PAGE_SIZE, OLYMPICS_MAX_PAGE_SIZE: Listing page sizes
  - OLYMPICS_LOG_LEVEL, OLYMPICS_LOG_FORMAT: slog level and text/json

# Architecture

  - handlers: Page controllers (home, sportspeople, participation, account)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, metrics, session and auth gate, form helpers
  - repository: SQL queries returning flat view rows
  - pagination: Page arithmetic and page-number window
  - views: Embedded HTML templates
  - models: Domain rows and view models
  - auth: Users file, password hashes, session tokens
  - metrics: Prometheus collectors
  - db: Connection, schema and placeholder rebinding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
