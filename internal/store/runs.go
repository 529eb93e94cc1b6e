package store

import (
	"database/sql"
	"time"
)

// Run records a single card generation.
type Run struct {
	ID              int64
	CreatedAt       time.Time
	ProjectName     string
	Source          string
	Remote          bool
	ProjectType     string
	Status          string
	Engine          string
	PopularityScore *float64
	OutputPath      string
}

// Run status values.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// InsertRun records a completed or failed generation run.
func (db *DB) InsertRun(r *Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	var score sql.NullFloat64
	if r.PopularityScore != nil {
		score = sql.NullFloat64{Float64: *r.PopularityScore, Valid: true}
	}

	result, err := db.conn.Exec(`
		INSERT INTO runs (created_at, project_name, source, remote, project_type, status, engine, popularity_score, output_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.CreatedAt.Format(time.RFC3339),
		r.ProjectName,
		r.Source,
		r.Remote,
		r.ProjectType,
		r.Status,
		r.Engine,
		score,
		r.OutputPath,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListRecentRuns returns the most recent runs, newest first.
func (db *DB) ListRecentRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(`
		SELECT id, created_at, project_name, source, remote, project_type, status, engine, popularity_score, output_path
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var r Run
		var createdAt string
		var score sql.NullFloat64
		if err := rows.Scan(&r.ID, &createdAt, &r.ProjectName, &r.Source, &r.Remote, &r.ProjectType, &r.Status, &r.Engine, &score, &r.OutputPath); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}
		if score.Valid {
			v := score.Float64
			r.PopularityScore = &v
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}
