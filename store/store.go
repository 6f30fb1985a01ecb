// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pricepoll/models"
)

// Filter narrows a Find query. Zero-valued fields are ignored; set fields
// are combined with AND.
type Filter struct {
	AgentEmail   string
	InitialRange string
	SessionToken string
}

// ResponseStore is the persistence boundary for survey records. The survey
// flow depends on this interface rather than *sql.DB so the entry path's
// best-effort write can be swapped for a queued one without touching
// navigation logic.
type ResponseStore interface {
	// Insert writes a new record, assigning ID and CreatedAt unless the
	// caller preset them, and returns the assigned ID.
	Insert(r *models.SurveyResponse) (string, error)

	// All returns every record, most recent first.
	All() ([]models.SurveyResponse, error)

	// Find returns up to limit records matching the filter, most recent
	// first. limit <= 0 means no limit.
	Find(f Filter, limit int) ([]models.SurveyResponse, error)

	// SetFollowUp writes the step-3 fields onto one existing record as a
	// single update. A nil note stores NULL.
	SetFollowUp(id, specificPrice, bestFeature string, improvementNote *string) error
}

// SQLStore implements ResponseStore over database/sql. Works with both the
// sqlite and postgres drivers; see package db for placeholder notes.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const responseColumns = "id, created_at, initial_range, specific_price, best_feature, improvement_note, agent_email, session_token"

func (s *SQLStore) Insert(r *models.SurveyResponse) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO response (`+responseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.ID, r.CreatedAt.UnixNano(), r.InitialRange,
		r.SpecificPrice, r.BestFeature, r.ImprovementNote,
		r.AgentEmail, r.SessionToken)
	if err != nil {
		return "", fmt.Errorf("failed to insert response: %w", err)
	}

	return r.ID, nil
}

func (s *SQLStore) All() ([]models.SurveyResponse, error) {
	return s.Find(Filter{}, 0)
}

func (s *SQLStore) Find(f Filter, limit int) ([]models.SurveyResponse, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + responseColumns + " FROM response")

	// Placeholders must stay in ascending first-occurrence order so both
	// drivers bind them positionally.
	var args []interface{}
	var conds []string
	addCond := func(column string, value string) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if f.AgentEmail != "" {
		addCond("agent_email", f.AgentEmail)
	}
	if f.InitialRange != "" {
		addCond("initial_range", f.InitialRange)
	}
	if f.SessionToken != "" {
		addCond("session_token", f.SessionToken)
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	sb.WriteString(" ORDER BY created_at DESC")
	if limit > 0 {
		args = append(args, limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := s.db.Query(sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.SurveyResponse{}
	for rows.Next() {
		r, err := scanResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read responses: %w", err)
	}

	return responses, nil
}

func (s *SQLStore) SetFollowUp(id, specificPrice, bestFeature string, improvementNote *string) error {
	res, err := s.db.Exec(`
		UPDATE response
		SET specific_price = $1, best_feature = $2, improvement_note = $3
		WHERE id = $4
	`, specificPrice, bestFeature, improvementNote, id)
	if err != nil {
		return fmt.Errorf("failed to update response: %w", err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("no response with id %s", id)
	}

	return nil
}

func scanResponse(rows *sql.Rows) (models.SurveyResponse, error) {
	var r models.SurveyResponse
	var createdAt int64
	var specificPrice, bestFeature, improvementNote, agentEmail, sessionToken sql.NullString

	err := rows.Scan(&r.ID, &createdAt, &r.InitialRange,
		&specificPrice, &bestFeature, &improvementNote,
		&agentEmail, &sessionToken)
	if err != nil {
		return models.SurveyResponse{}, err
	}

	r.CreatedAt = time.Unix(0, createdAt).UTC()
	r.SpecificPrice = stringPtr(specificPrice)
	r.BestFeature = stringPtr(bestFeature)
	r.ImprovementNote = stringPtr(improvementNote)
	r.AgentEmail = stringPtr(agentEmail)
	r.SessionToken = stringPtr(sessionToken)

	return r, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
