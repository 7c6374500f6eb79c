// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	ddl := sqliteSchema
	if dialect == DialectPostgres {
		ddl = postgresSchema
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- People
CREATE TABLE IF NOT EXISTS person (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT,
    gender TEXT,
    height REAL,
    weight REAL
);

CREATE INDEX IF NOT EXISTS idx_person_full_name ON person(full_name);

-- Games
CREATE TABLE IF NOT EXISTS games (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    games_year INTEGER,
    games_name TEXT,
    season TEXT
);

-- Competitors (one row per person per Games)
CREATE TABLE IF NOT EXISTS games_competitor (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    games_id INTEGER REFERENCES games(id),
    person_id INTEGER REFERENCES person(id),
    age INTEGER
);

CREATE INDEX IF NOT EXISTS idx_games_competitor_person_id ON games_competitor(person_id);

-- Sports and events
CREATE TABLE IF NOT EXISTS sport (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sport_name TEXT
);

CREATE TABLE IF NOT EXISTS event (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sport_id INTEGER REFERENCES sport(id),
    event_name TEXT
);

-- Medals
CREATE TABLE IF NOT EXISTS medal (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    medal_name TEXT
);

-- Competitor events (no key: duplicates are allowed)
CREATE TABLE IF NOT EXISTS competitor_event (
    event_id INTEGER REFERENCES event(id),
    competitor_id INTEGER REFERENCES games_competitor(id),
    medal_id INTEGER REFERENCES medal(id)
);

CREATE INDEX IF NOT EXISTS idx_competitor_event_competitor_id ON competitor_event(competitor_id);
`

const postgresSchema = `
-- People
CREATE TABLE IF NOT EXISTS person (
    id SERIAL PRIMARY KEY,
    full_name TEXT,
    gender TEXT,
    height NUMERIC(5, 1),
    weight NUMERIC(5, 1)
);

CREATE INDEX IF NOT EXISTS idx_person_full_name ON person(full_name);

-- Games
CREATE TABLE IF NOT EXISTS games (
    id SERIAL PRIMARY KEY,
    games_year INTEGER,
    games_name TEXT,
    season TEXT
);

-- Competitors (one row per person per Games)
CREATE TABLE IF NOT EXISTS games_competitor (
    id SERIAL PRIMARY KEY,
    games_id INTEGER REFERENCES games(id),
    person_id INTEGER REFERENCES person(id),
    age INTEGER
);

CREATE INDEX IF NOT EXISTS idx_games_competitor_person_id ON games_competitor(person_id);

-- Sports and events
CREATE TABLE IF NOT EXISTS sport (
    id SERIAL PRIMARY KEY,
    sport_name TEXT
);

CREATE TABLE IF NOT EXISTS event (
    id SERIAL PRIMARY KEY,
    sport_id INTEGER REFERENCES sport(id),
    event_name TEXT
);

-- Medals
CREATE TABLE IF NOT EXISTS medal (
    id SERIAL PRIMARY KEY,
    medal_name TEXT
);

-- Competitor events (no key: duplicates are allowed)
CREATE TABLE IF NOT EXISTS competitor_event (
    event_id INTEGER REFERENCES event(id),
    competitor_id INTEGER REFERENCES games_competitor(id),
    medal_id INTEGER REFERENCES medal(id)
);

CREATE INDEX IF NOT EXISTS idx_competitor_event_competitor_id ON competitor_event(competitor_id);
`
