package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"localbistro/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrDishNotFound = errors.New("dish not found")
	ErrCartNotFound = errors.New("cart not found")
	ErrEmptyCart    = errors.New("cart is empty")
)

// MenuService owns the static catalog and the per-visitor carts. The
// catalog is immutable, so totals are recomputed on every read with no
// invalidation concern.
type MenuService struct {
	catalog  []domain.Dish
	sessions SessionStore
	handoff  handoffs
}

func NewMenuService(catalog []domain.Dish, sessions SessionStore, phone string, publisher HandoffPublisher) *MenuService {
	return &MenuService{
		catalog:  catalog,
		sessions: sessions,
		handoff:  handoffs{phone: phone, publisher: publisher},
	}
}

// Filter matches a case-insensitive substring of name or description and
// an exact category unless the category is "All" or empty.
func (s *MenuService) Filter(query, category string) []domain.Dish {
	q := strings.ToLower(query)
	matches := []domain.Dish{}
	for _, dish := range s.catalog {
		if q != "" &&
			!strings.Contains(strings.ToLower(dish.Name), q) &&
			!strings.Contains(strings.ToLower(dish.Description), q) {
			continue
		}
		if category != "" && category != "All" && dish.Category != category {
			continue
		}
		matches = append(matches, dish)
	}
	return matches
}

func (s *MenuService) Dish(id string) (*domain.Dish, error) {
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			dish := s.catalog[i]
			return &dish, nil
		}
	}
	return nil, ErrDishNotFound
}

func (s *MenuService) Categories() []string {
	return domain.MenuCategories
}

func (s *MenuService) CreateCart(ctx context.Context) (*domain.Cart, error) {
	cart := &domain.Cart{
		ID:        uuid.NewString(),
		Items:     map[string]int{},
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Put(ctx, cartKey(cart.ID), cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	return cart, nil
}

func (s *MenuService) Cart(ctx context.Context, cartID string) (*domain.CartSummary, error) {
	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.summarize(cart), nil
}

// AddToCart adds qty to the existing entry, creating it when absent.
// Quantities below one are clamped to one. Dish existence is not
// checked here; an entry no dish matches contributes zero to the total.
func (s *MenuService) AddToCart(ctx context.Context, cartID, dishID string, qty int) (*domain.CartSummary, error) {
	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if qty < 1 {
		qty = 1
	}
	cart.Items[dishID] += qty
	if err := s.sessions.Put(ctx, cartKey(cartID), cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.summarize(cart), nil
}

// OrderHandoff composes the order message, publishes the handoff event
// and returns the message plus deep link.
func (s *MenuService) OrderHandoff(ctx context.Context, cartID string) (*domain.Handoff, error) {
	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	summary := s.summarize(cart)
	if len(summary.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	parts := make([]string, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
	}
	message := fmt.Sprintf("Hi! I'd like to order: %s. Total: $%.2f",
		strings.Join(parts, ", "), summary.Total)

	return s.handoff.emit(ctx, domain.HandoffOrder, cartID, message), nil
}

func (s *MenuService) DeleteCart(ctx context.Context, cartID string) error {
	if _, err := s.loadCart(ctx, cartID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, cartKey(cartID))
}

func (s *MenuService) loadCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := s.sessions.Get(ctx, cartKey(cartID), &cart); err != nil {
		return nil, ErrCartNotFound
	}
	if cart.Items == nil {
		cart.Items = map[string]int{}
	}
	return &cart, nil
}

// summarize derives lines in catalog order. Entries whose dish ID is not
// in the catalog are kept in the item count but priced at zero and left
// off the lines.
func (s *MenuService) summarize(cart *domain.Cart) *domain.CartSummary {
	summary := &domain.CartSummary{ID: cart.ID, Lines: []domain.CartLine{}}
	for _, dish := range s.catalog {
		qty, ok := cart.Items[dish.ID]
		if !ok || qty == 0 {
			continue
		}
		summary.Lines = append(summary.Lines, domain.CartLine{
			DishID:    dish.ID,
			Name:      dish.Name,
			Quantity:  qty,
			UnitPrice: dish.Price,
			LineTotal: dish.Price * float64(qty),
		})
		summary.Total += dish.Price * float64(qty)
	}
	for _, qty := range cart.Items {
		summary.ItemCount += qty
	}
	return summary
}

func cartKey(id string) string {
	return "cart:" + id
}
