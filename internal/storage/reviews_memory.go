package storage

import (
	"context"
	"database/sql"
	"sync"

	"localbistro/internal/domain"
)

// MemoryReviewRepository is the default reviews backend, pre-seeded and
// lost on restart. Newest reviews come first.
type MemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func NewMemoryReviewRepository(seed []domain.Review) *MemoryReviewRepository {
	reviews := make([]domain.Review, len(seed))
	copy(reviews, seed)
	return &MemoryReviewRepository{reviews: reviews}
}

func (r *MemoryReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *MemoryReviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append([]domain.Review{*review}, r.reviews...)
	return nil
}

func (r *MemoryReviewRepository) IncrementHelpful(ctx context.Context, id string) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews[i].Helpful++
			review := r.reviews[i]
			return &review, nil
		}
	}
	return nil, sql.ErrNoRows
}
