package storage

import (
	"context"
	"database/sql"

	"localbistro/internal/domain"
)

// PostgresReviewRepository keeps reviews across restarts. A serial seq
// column preserves the newest-first ordering the board expects.
type PostgresReviewRepository struct {
	DB *sql.DB
}

func NewPostgresReviewRepository(db *sql.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{DB: db}
}

func (r *PostgresReviewRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS reviews (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			rating INT NOT NULL,
			date_label TEXT NOT NULL,
			text TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			helpful INT NOT NULL DEFAULT 0
		)
	`)
	return err
}

// SeedIfEmpty loads the starter reviews once. The seed slice is
// newest-first, so it is inserted in reverse to keep that order under
// the seq sort.
func (r *PostgresReviewRepository) SeedIfEmpty(seed []domain.Review) error {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := len(seed) - 1; i >= 0; i-- {
		rev := seed[i]
		if _, err := r.DB.Exec(`
			INSERT INTO reviews (id, name, rating, date_label, text, image_url, helpful)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, rev.ID, rev.Name, rev.Rating, rev.Date, rev.Text, rev.ImageURL, rev.Helpful); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, rating, date_label, text, image_url, helpful
		FROM reviews
		ORDER BY seq DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.Name, &rev.Rating, &rev.Date, &rev.Text, &rev.ImageURL, &rev.Helpful); err != nil {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

func (r *PostgresReviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	_, err := r.DB.Exec(`
		INSERT INTO reviews (id, name, rating, date_label, text, image_url, helpful)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, review.ID, review.Name, review.Rating, review.Date, review.Text, review.ImageURL, review.Helpful)
	return err
}

func (r *PostgresReviewRepository) IncrementHelpful(ctx context.Context, id string) (*domain.Review, error) {
	var rev domain.Review
	err := r.DB.QueryRow(`
		UPDATE reviews SET helpful = helpful + 1
		WHERE id = $1
		RETURNING id, name, rating, date_label, text, image_url, helpful
	`, id).Scan(&rev.ID, &rev.Name, &rev.Rating, &rev.Date, &rev.Text, &rev.ImageURL, &rev.Helpful)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}
