package service

import (
	"context"

	"localbistro/internal/domain"
)

type MenuServiceInterface interface {
	Filter(query, category string) []domain.Dish
	Dish(id string) (*domain.Dish, error)
	Categories() []string
	CreateCart(ctx context.Context) (*domain.Cart, error)
	Cart(ctx context.Context, cartID string) (*domain.CartSummary, error)
	AddToCart(ctx context.Context, cartID, dishID string, qty int) (*domain.CartSummary, error)
	OrderHandoff(ctx context.Context, cartID string) (*domain.Handoff, error)
	DeleteCart(ctx context.Context, cartID string) error
}

type BookingServiceInterface interface {
	Options() domain.BookingOptions
	Start(ctx context.Context) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	UpdateSelection(ctx context.Context, id string, sel BookingSelection) (*domain.Booking, error)
	Continue(ctx context.Context, id string) (*domain.Booking, error)
	Back(ctx context.Context, id string) (*domain.Booking, error)
	UpdateContact(ctx context.Context, id string, contact BookingContact) (*domain.Booking, error)
	Confirm(ctx context.Context, id string) (*domain.Booking, *domain.Handoff, error)
	Restart(ctx context.Context, id string) (*domain.Booking, error)
	Handoff(ctx context.Context, id string) (*domain.Handoff, error)
}

type GalleryServiceInterface interface {
	Images(category string) []domain.GalleryImage
	Categories() []string
	StartLightbox(ctx context.Context, category string) (*domain.LightboxView, error)
	Lightbox(ctx context.Context, id string) (*domain.LightboxView, error)
	SetCategory(ctx context.Context, id, category string) (*domain.LightboxView, error)
	Open(ctx context.Context, id string, index int) (*domain.LightboxView, error)
	Next(ctx context.Context, id string) (*domain.LightboxView, error)
	Previous(ctx context.Context, id string) (*domain.LightboxView, error)
	Close(ctx context.Context, id string) (*domain.LightboxView, error)
	DeleteLightbox(ctx context.Context, id string) error
}

type ReviewServiceInterface interface {
	List(ctx context.Context) ([]domain.Review, error)
	Summary(ctx context.Context) (*domain.ReviewSummary, error)
	Submit(ctx context.Context, name string, rating int, text string) (*domain.Review, error)
	MarkHelpful(ctx context.Context, id string) (*domain.Review, error)
}

type InfoServiceInterface interface {
	Business() domain.BusinessInfo
	Specials() []domain.Special
	ContactHandoff(ctx context.Context, topic string) *domain.Handoff
}

// SessionStore keeps per-visitor view state (cart, booking draft,
// lightbox) for as long as the owning page stays mounted. Values are
// encoded as JSON. A Get on a missing or expired key returns an error.
type SessionStore interface {
	Put(ctx context.Context, key string, v any) error
	Get(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Insert(ctx context.Context, review *domain.Review) error
	IncrementHelpful(ctx context.Context, id string) (*domain.Review, error)
}

type HandoffPublisher interface {
	Publish(ctx context.Context, event domain.HandoffEvent) error
}

type QRGenerator interface {
	Generate(link string) ([]byte, error)
}

var _ MenuServiceInterface = (*MenuService)(nil)
var _ BookingServiceInterface = (*BookingService)(nil)
var _ GalleryServiceInterface = (*GalleryService)(nil)
var _ ReviewServiceInterface = (*ReviewService)(nil)
var _ InfoServiceInterface = (*InfoService)(nil)
var _ QRGenerator = (*QREncoder)(nil)
