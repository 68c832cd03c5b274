package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"localbistro/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrInvalidReview  = errors.New("review needs a name, a 1-5 rating and text")
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewService exposes the reviews board: the list, the aggregate
// summary, submissions and the helpful counter.
type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Summary computes the average rating and the 5-star..1-star
// distribution. With no reviews everything is zero, including the
// proportions.
func (s *ReviewService) Summary(ctx context.Context) (*domain.ReviewSummary, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize reviews: %w", err)
	}

	summary := &domain.ReviewSummary{Total: len(reviews)}
	counts := make(map[int]int, 5)
	sum := 0
	for _, r := range reviews {
		counts[r.Rating]++
		sum += r.Rating
	}
	if summary.Total > 0 {
		summary.Average = float64(sum) / float64(summary.Total)
	}
	for stars := 5; stars >= 1; stars-- {
		bar := domain.RatingBar{Stars: stars, Count: counts[stars]}
		if summary.Total > 0 {
			bar.Proportion = float64(bar.Count) / float64(summary.Total)
		}
		summary.Distribution = append(summary.Distribution, bar)
	}
	return summary, nil
}

// Submit prepends a new review. Newly submitted reviews carry the
// "Just now" date label and start with zero helpful votes.
func (s *ReviewService) Submit(ctx context.Context, name string, rating int, text string) (*domain.Review, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	if name == "" || text == "" || rating < 1 || rating > 5 {
		return nil, ErrInvalidReview
	}

	review := &domain.Review{
		ID:     uuid.NewString(),
		Name:   name,
		Rating: rating,
		Date:   "Just now",
		Text:   text,
	}
	if err := s.repo.Insert(ctx, review); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) MarkHelpful(ctx context.Context, id string) (*domain.Review, error) {
	review, err := s.repo.IncrementHelpful(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("mark helpful: %w", err)
	}
	return review, nil
}
