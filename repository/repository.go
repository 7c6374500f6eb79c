// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/olympics-app/db"
	"github.com/danielhkuo/olympics-app/models"
)

var ErrNotFound = errors.New("not found")

// Store runs the application's queries against one database handle.
// It holds no state besides the handle and is safe for concurrent use.
type Store struct {
	conn    *sql.DB
	dialect string
}

func New(conn *sql.DB, dialect string) *Store {
	return &Store{conn: conn, dialect: dialect}
}

// DB returns the underlying handle
func (s *Store) DB() *sql.DB {
	return s.conn
}

func (s *Store) bind(query string) string {
	return db.Rebind(s.dialect, query)
}

// GetPerson returns one person by id
func (s *Store) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	var (
		p      models.Person
		name   sql.NullString
		gender sql.NullString
		height sql.NullFloat64
		weight sql.NullFloat64
	)
	err := s.conn.QueryRowContext(ctx, s.bind(`
		SELECT id, full_name, gender, height, weight
		FROM person
		WHERE id = ?
	`), id).Scan(&p.ID, &name, &gender, &height, &weight)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Person{}, ErrNotFound
	}
	if err != nil {
		return models.Person{}, fmt.Errorf("query person %d: %w", id, err)
	}

	p.FullName = name.String
	p.Gender = gender.String
	p.Height = floatPtr(height)
	p.Weight = floatPtr(weight)
	return p, nil
}

// FirstCompetitor returns the lowest-id competitor record of a person
func (s *Store) FirstCompetitor(ctx context.Context, personID int64) (models.Competitor, error) {
	var (
		c       models.Competitor
		gamesID sql.NullInt64
		age     sql.NullInt64
	)
	err := s.conn.QueryRowContext(ctx, s.bind(`
		SELECT id, person_id, games_id, age
		FROM games_competitor
		WHERE person_id = ?
		ORDER BY id
		LIMIT 1
	`), personID).Scan(&c.ID, &c.PersonID, &gamesID, &age)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Competitor{}, ErrNotFound
	}
	if err != nil {
		return models.Competitor{}, fmt.Errorf("query competitor for person %d: %w", personID, err)
	}

	c.GamesID = gamesID.Int64
	c.Age = intPtr(age)
	return c, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}
