package service

import (
	"context"
	"errors"
	"fmt"

	"localbistro/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrLightboxNotFound = errors.New("lightbox not found")
	ErrLightboxClosed   = errors.New("lightbox is not open")
	ErrNoImages         = errors.New("no images in the selected category")
	ErrIndexOutOfRange  = errors.New("image index out of range")
)

// GalleryService serves the photo grid and drives a per-session lightbox.
// Navigation wraps around inside the active category filter.
type GalleryService struct {
	images   []domain.GalleryImage
	sessions SessionStore
}

func NewGalleryService(images []domain.GalleryImage, sessions SessionStore) *GalleryService {
	return &GalleryService{images: images, sessions: sessions}
}

// Images filters by exact category; "" and "All" return everything.
func (s *GalleryService) Images(category string) []domain.GalleryImage {
	if category == "" || category == "All" {
		return s.images
	}
	filtered := make([]domain.GalleryImage, 0, len(s.images))
	for _, img := range s.images {
		if img.Category == category {
			filtered = append(filtered, img)
		}
	}
	return filtered
}

func (s *GalleryService) Categories() []string {
	return domain.GalleryCategories
}

func (s *GalleryService) StartLightbox(ctx context.Context, category string) (*domain.LightboxView, error) {
	lb := &domain.Lightbox{
		ID:       uuid.NewString(),
		Category: normalizeCategory(category),
	}
	if err := s.sessions.Put(ctx, lightboxKey(lb.ID), lb); err != nil {
		return nil, fmt.Errorf("start lightbox: %w", err)
	}
	return s.view(lb), nil
}

func (s *GalleryService) Lightbox(ctx context.Context, id string) (*domain.LightboxView, error) {
	lb, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(lb), nil
}

// SetCategory switches the grid filter and closes any open image, since
// the previous index is meaningless against the new filtered set.
func (s *GalleryService) SetCategory(ctx context.Context, id, category string) (*domain.LightboxView, error) {
	lb, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	lb.Category = normalizeCategory(category)
	lb.Index = nil
	if err := s.save(ctx, lb); err != nil {
		return nil, err
	}
	return s.view(lb), nil
}

// Open shows the image at index within the current filtered set.
func (s *GalleryService) Open(ctx context.Context, id string, index int) (*domain.LightboxView, error) {
	lb, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	filtered := s.Images(lb.Category)
	if len(filtered) == 0 {
		return nil, ErrNoImages
	}
	if index < 0 || index >= len(filtered) {
		return nil, ErrIndexOutOfRange
	}
	lb.Index = &index
	if err := s.save(ctx, lb); err != nil {
		return nil, err
	}
	return s.view(lb), nil
}

func (s *GalleryService) Next(ctx context.Context, id string) (*domain.LightboxView, error) {
	return s.step(ctx, id, 1)
}

func (s *GalleryService) Previous(ctx context.Context, id string) (*domain.LightboxView, error) {
	return s.step(ctx, id, -1)
}

func (s *GalleryService) Close(ctx context.Context, id string) (*domain.LightboxView, error) {
	lb, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	lb.Index = nil
	if err := s.save(ctx, lb); err != nil {
		return nil, err
	}
	return s.view(lb), nil
}

func (s *GalleryService) DeleteLightbox(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, lightboxKey(id))
}

func (s *GalleryService) step(ctx context.Context, id string, delta int) (*domain.LightboxView, error) {
	lb, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if lb.Index == nil {
		return nil, ErrLightboxClosed
	}
	filtered := s.Images(lb.Category)
	if len(filtered) == 0 {
		return nil, ErrNoImages
	}
	next := (*lb.Index + delta + len(filtered)) % len(filtered)
	lb.Index = &next
	if err := s.save(ctx, lb); err != nil {
		return nil, err
	}
	return s.view(lb), nil
}

func (s *GalleryService) view(lb *domain.Lightbox) *domain.LightboxView {
	filtered := s.Images(lb.Category)
	view := &domain.LightboxView{
		ID:       lb.ID,
		Category: lb.Category,
		Count:    len(filtered),
	}
	if lb.Index == nil || *lb.Index >= len(filtered) {
		return view
	}
	idx := *lb.Index
	view.Open = true
	view.Index = &idx
	view.Image = &filtered[idx]
	view.Position = fmt.Sprintf("%d / %d", idx+1, len(filtered))
	return view
}

func (s *GalleryService) load(ctx context.Context, id string) (*domain.Lightbox, error) {
	var lb domain.Lightbox
	if err := s.sessions.Get(ctx, lightboxKey(id), &lb); err != nil {
		return nil, ErrLightboxNotFound
	}
	return &lb, nil
}

func (s *GalleryService) save(ctx context.Context, lb *domain.Lightbox) error {
	if err := s.sessions.Put(ctx, lightboxKey(lb.ID), lb); err != nil {
		return fmt.Errorf("save lightbox: %w", err)
	}
	return nil
}

func normalizeCategory(category string) string {
	if category == "" {
		return "All"
	}
	return category
}

func lightboxKey(id string) string {
	return "lightbox:" + id
}
