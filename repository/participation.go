// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/danielhkuo/olympics-app/models"
)

// AddParticipation inserts one competitor_event row
func (s *Store) AddParticipation(ctx context.Context, ce models.CompetitorEvent) error {
	var medalID any
	if ce.MedalID != nil {
		medalID = *ce.MedalID
	}

	_, err := s.conn.ExecContext(ctx, s.bind(`
		INSERT INTO competitor_event (competitor_id, event_id, medal_id) VALUES (?, ?, ?)
	`), ce.CompetitorID, ce.EventID, medalID)
	if err != nil {
		return fmt.Errorf("insert competitor event: %w", err)
	}
	return nil
}

// DeleteParticipation removes every competitor_event row matching the key
// and returns how many were removed. Zero is not an error.
func (s *Store) DeleteParticipation(ctx context.Context, competitorID, eventID, medalID int64) (int64, error) {
	res, err := s.conn.ExecContext(ctx, s.bind(`
		DELETE FROM competitor_event WHERE competitor_id = ? AND event_id = ? AND medal_id = ?
	`), competitorID, eventID, medalID)
	if err != nil {
		return 0, fmt.Errorf("delete competitor event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// EventOptions lists events labelled "<sport> - <event>"
func (s *Store) EventOptions(ctx context.Context) ([]models.SelectOption, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT e.id, s.sport_name, e.event_name
		FROM event e
		LEFT JOIN sport s ON s.id = e.sport_id
		ORDER BY e.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	options := []models.SelectOption{}
	for rows.Next() {
		var (
			opt   models.SelectOption
			sport sql.NullString
			event sql.NullString
		)
		if err := rows.Scan(&opt.Value, &sport, &event); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		opt.Text = sport.String + " - " + event.String
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return options, nil
}

// GamesOptions lists Games labelled "<year> - <season>"
func (s *Store) GamesOptions(ctx context.Context) ([]models.SelectOption, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, games_year, season
		FROM games
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	options := []models.SelectOption{}
	for rows.Next() {
		var (
			opt    models.SelectOption
			year   sql.NullInt64
			season sql.NullString
		)
		if err := rows.Scan(&opt.Value, &year, &season); err != nil {
			return nil, fmt.Errorf("scan games: %w", err)
		}
		yearText := ""
		if year.Valid {
			yearText = strconv.FormatInt(year.Int64, 10)
		}
		opt.Text = yearText + " - " + season.String
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return options, nil
}

// MedalOptions lists medals by name
func (s *Store) MedalOptions(ctx context.Context) ([]models.SelectOption, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, medal_name
		FROM medal
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query medals: %w", err)
	}
	defer rows.Close()

	options := []models.SelectOption{}
	for rows.Next() {
		var (
			opt  models.SelectOption
			name sql.NullString
		)
		if err := rows.Scan(&opt.Value, &name); err != nil {
			return nil, fmt.Errorf("scan medal: %w", err)
		}
		opt.Text = name.String
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medals: %w", err)
	}
	return options, nil
}
