// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the Olympics database and creates its schema.

# Connections

Open selects the driver from the database type:

	conn, err := db.Open(db.DialectSQLite, "olympics.db")
	conn, err := db.Open(db.DialectPostgres, "postgres://...")

SQLite uses the pure Go modernc.org/sqlite driver with foreign keys on.
Postgres uses github.com/lib/pq.

# Placeholders

Queries are written with ? placeholders. Rebind converts them for postgres:

	db.Rebind(db.DialectPostgres, "SELECT * FROM person WHERE id = ?")
	// SELECT * FROM person WHERE id = $1

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Reference data (people, Games, sports, events, medals) is seeded outside
the application.

# Relationships

	person 1──* games_competitor *──1 games
	games_competitor 1──* competitor_event
	sport 1──* event 1──* competitor_event
	medal 1──* competitor_event (medal_id nullable)
*/
package db
