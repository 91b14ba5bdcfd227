package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"slidearchive/internal/domain"
)

type slideRepository struct {
	DB *sql.DB
}

// NewSlideRepository returns a domain.SlideRepository implemented with SQLite.
func NewSlideRepository(db *sql.DB) domain.SlideRepository {
	return &slideRepository{DB: db}
}

func (r *slideRepository) Append(ctx context.Context, e *domain.SlideEntry) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO slides (date, title, embed_url) VALUES (?, ?, ?)`,
		e.DateString(), e.Title, e.EmbedURL)
	if err != nil {
		return fmt.Errorf("insert slide: %w", err)
	}
	return nil
}

func (r *slideRepository) FetchAll(ctx context.Context) ([]*domain.SlideEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, date, title, embed_url FROM slides ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query slides: %w", err)
	}
	defer rows.Close()

	var entries []*domain.SlideEntry
	for rows.Next() {
		var (
			id   int64
			date string
			e    domain.SlideEntry
		)
		if err := rows.Scan(&id, &date, &e.Title, &e.EmbedURL); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		if e.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("slide %d: %w: %q", id, err, date)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read slides: %w", err)
	}
	return entries, nil
}
