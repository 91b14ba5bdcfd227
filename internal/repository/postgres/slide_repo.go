package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"slidearchive/internal/domain"
)

// Schema creates the slides table. Rows are ordered by their serial id.
const Schema = `
CREATE TABLE IF NOT EXISTS slides (
	id         BIGSERIAL PRIMARY KEY,
	date       DATE NOT NULL,
	title      TEXT NOT NULL,
	embed_url  TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type slideRepository struct {
	DB *sql.DB
}

// NewSlideRepository returns a domain.SlideRepository implemented with Postgres.
func NewSlideRepository(db *sql.DB) domain.SlideRepository {
	return &slideRepository{DB: db}
}

// Migrate applies Schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

func (r *slideRepository) Append(ctx context.Context, e *domain.SlideEntry) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO slides (date, title, embed_url) VALUES ($1, $2, $3)`,
		e.DateString(), e.Title, e.EmbedURL)
	if err != nil {
		return fmt.Errorf("insert slide: %w", err)
	}
	return nil
}

func (r *slideRepository) FetchAll(ctx context.Context) ([]*domain.SlideEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT date, title, embed_url FROM slides ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query slides: %w", err)
	}
	defer rows.Close()

	var entries []*domain.SlideEntry
	for rows.Next() {
		var e domain.SlideEntry
		if err := rows.Scan(&e.Date, &e.Title, &e.EmbedURL); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		e.Date = domain.CalendarDate(e.Date)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read slides: %w", err)
	}
	return entries, nil
}
