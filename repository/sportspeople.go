// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/olympics-app/models"
)

// CountPeople returns the number of person rows
func (s *Store) CountPeople(ctx context.Context) (int, error) {
	var total int
	if err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM person").Scan(&total); err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	return total, nil
}

// ListSportspeople returns one page of people ordered by full name, each
// with medal and participation counts. Ties on name are broken by id so
// pages do not overlap.
func (s *Store) ListSportspeople(ctx context.Context, offset, limit int) ([]models.SportspersonRow, error) {
	rows, err := s.conn.QueryContext(ctx, s.bind(`
		SELECT p.id, p.full_name, p.weight, p.height, p.gender,
		       COALESCE(SUM(CASE WHEN m.medal_name = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN m.medal_name = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN m.medal_name = ? THEN 1 ELSE 0 END), 0),
		       COUNT(ce.competitor_id)
		FROM (
			SELECT id, full_name, weight, height, gender
			FROM person
			ORDER BY full_name, id
			LIMIT ? OFFSET ?
		) p
		LEFT JOIN games_competitor gc ON gc.person_id = p.id
		LEFT JOIN competitor_event ce ON ce.competitor_id = gc.id
		LEFT JOIN medal m ON m.id = ce.medal_id
		GROUP BY p.id, p.full_name, p.weight, p.height, p.gender
		ORDER BY p.full_name, p.id
	`), models.MedalGold, models.MedalSilver, models.MedalBronze, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query sportspeople: %w", err)
	}
	defer rows.Close()

	people := []models.SportspersonRow{}
	for rows.Next() {
		var (
			row    models.SportspersonRow
			name   sql.NullString
			gender sql.NullString
			weight sql.NullFloat64
			height sql.NullFloat64
		)
		if err := rows.Scan(
			&row.SportspersonID, &name, &weight, &height, &gender,
			&row.GoldMedals, &row.SilverMedals, &row.BronzeMedals,
			&row.NumberOfParticipations,
		); err != nil {
			return nil, fmt.Errorf("scan sportsperson: %w", err)
		}
		row.FullName = name.String
		row.Gender = gender.String
		row.Weight = floatPtr(weight)
		row.Height = floatPtr(height)
		people = append(people, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sportspeople: %w", err)
	}

	return people, nil
}

// ListPersonEvents returns every competitor event of a person across all
// Games. Rows come back in store order.
func (s *Store) ListPersonEvents(ctx context.Context, personID int64) ([]models.SportspersonEventRow, error) {
	rows, err := s.conn.QueryContext(ctx, s.bind(`
		SELECT ce.competitor_id, ce.event_id, ce.medal_id,
		       s.sport_name, e.event_name, g.games_year, g.season,
		       gc.age, m.medal_name
		FROM competitor_event ce
		JOIN games_competitor gc ON gc.id = ce.competitor_id
		LEFT JOIN games g ON g.id = gc.games_id
		LEFT JOIN event e ON e.id = ce.event_id
		LEFT JOIN sport s ON s.id = e.sport_id
		LEFT JOIN medal m ON m.id = ce.medal_id
		WHERE gc.person_id = ?
	`), personID)
	if err != nil {
		return nil, fmt.Errorf("query events of person %d: %w", personID, err)
	}
	defer rows.Close()

	events := []models.SportspersonEventRow{}
	for rows.Next() {
		var (
			row       models.SportspersonEventRow
			eventID   sql.NullInt64
			medalID   sql.NullInt64
			sportName sql.NullString
			eventName sql.NullString
			year      sql.NullInt64
			season    sql.NullString
			age       sql.NullInt64
			medalName sql.NullString
		)
		if err := rows.Scan(
			&row.CompetitorID, &eventID, &medalID,
			&sportName, &eventName, &year, &season,
			&age, &medalName,
		); err != nil {
			return nil, fmt.Errorf("scan competitor event: %w", err)
		}
		row.EventID = eventID.Int64
		row.MedalID = int64Ptr(medalID)
		row.SportName = sportName.String
		row.EventName = eventName.String
		row.Olympiad = intPtr(year)
		row.Season = season.String
		row.AgeAtEvent = intPtr(age)
		row.Medal = models.NoMedal
		if medalName.Valid {
			row.Medal = medalName.String
		}
		events = append(events, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate competitor events: %w", err)
	}

	return events, nil
}
