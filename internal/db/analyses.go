package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is the flat record persisted per analysis. The analysis core
// produces the field values; it does not depend on this schema.
type AnalysisRecord struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Score              int       `json:"score"`
	CreatedAt          time.Time `json:"created_at"`
	PageCount          int       `json:"page_count"`
	PredictedField     string    `json:"predicted_field"`
	Level              string    `json:"level"`
	Skills             []string  `json:"skills"`
	RecommendedSkills  []string  `json:"recommended_skills"`
	RecommendedCourses []string  `json:"recommended_courses"`
}

// SaveAnalysis stores an analysis record and returns its generated ID.
func (db *DB) SaveAnalysis(ctx context.Context, rec *AnalysisRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (name, email, score, page_count, predicted_field, level,
		                       skills, recommended_skills, recommended_courses)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		rec.Name, rec.Email, rec.Score, rec.PageCount, rec.PredictedField, rec.Level,
		rec.Skills, rec.RecommendedSkills, rec.RecommendedCourses,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis fetches a single analysis record by ID.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, score, created_at, page_count, predicted_field, level,
		        skills, recommended_skills, recommended_courses
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Score, &rec.CreatedAt, &rec.PageCount,
		&rec.PredictedField, &rec.Level, &rec.Skills, &rec.RecommendedSkills,
		&rec.RecommendedCourses)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}
	return &rec, nil
}

// ListAnalyses returns the most recent analysis records, newest first.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, score, created_at, page_count, predicted_field, level,
		        skills, recommended_skills, recommended_courses
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	records := make([]AnalysisRecord, 0)
	for rows.Next() {
		var rec AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Score, &rec.CreatedAt,
			&rec.PageCount, &rec.PredictedField, &rec.Level, &rec.Skills,
			&rec.RecommendedSkills, &rec.RecommendedCourses); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	return records, nil
}
