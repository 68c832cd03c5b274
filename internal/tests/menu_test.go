package tests

import (
	"context"
	"testing"
	"time"

	"localbistro/internal/domain"
	"localbistro/internal/mocks"
	"localbistro/internal/service"
	"localbistro/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMenuService(publisher service.HandoffPublisher) *service.MenuService {
	sessions := storage.NewMemorySessionStore(time.Minute)
	return service.NewMenuService(domain.Menu, sessions, domain.Bistro.Phone, publisher)
}

func TestMenuService_Filter(t *testing.T) {
	svc := newMenuService(nil)

	tests := []struct {
		name     string
		query    string
		category string
		expected int
	}{
		{name: "no_filters_returns_all", query: "", category: "", expected: len(domain.Menu)},
		{name: "all_category_returns_all", query: "", category: "All", expected: len(domain.Menu)},
		{name: "category_only", query: "", category: "Desserts", expected: 2},
		{name: "query_matches_name_case_insensitive", query: "RISOTTO", category: "", expected: 1},
		{name: "query_matches_description", query: "parmesan", category: "", expected: 2},
		{name: "query_matches_name_and_description", query: "truffle", category: "", expected: 2},
		{name: "query_and_category_intersect", query: "salad", category: "Mains", expected: 0},
		{name: "query_matches_pizza_by_name", query: "pizza", category: "", expected: 1},
		{name: "no_match", query: "sushi", category: "", expected: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishes := svc.Filter(testCase.query, testCase.category)
			assert.Len(t, dishes, testCase.expected)
		})
	}
}

func TestMenuService_Dish(t *testing.T) {
	svc := newMenuService(nil)

	dish, err := svc.Dish("3")
	assert.NoError(t, err)
	assert.Equal(t, "Caesar Salad", dish.Name)

	_, err = svc.Dish("999")
	assert.ErrorIs(t, err, service.ErrDishNotFound)
}

func TestMenuService_AddToCart(t *testing.T) {
	svc := newMenuService(nil)
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Adding the same dish twice accumulates.
	summary, err := svc.AddToCart(ctx, cart.ID, "3", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.ItemCount)

	summary, err = svc.AddToCart(ctx, cart.ID, "3", 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Len(t, summary.Lines, 1)
	assert.Equal(t, 3, summary.Lines[0].Quantity)
	assert.InDelta(t, 42.0, summary.Total, 0.001)
}

func TestMenuService_AddToCart_ClampsQuantity(t *testing.T) {
	svc := newMenuService(nil)
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	summary, err := svc.AddToCart(ctx, cart.ID, "8", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.ItemCount)

	summary, err = svc.AddToCart(ctx, cart.ID, "8", -5)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestMenuService_AddToCart_UnknownDishContributesNothing(t *testing.T) {
	svc := newMenuService(nil)
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	summary, err := svc.AddToCart(ctx, cart.ID, "ghost", 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, summary.ItemCount)
	assert.Empty(t, summary.Lines)
	assert.Zero(t, summary.Total)
}

func TestMenuService_OrderHandoff(t *testing.T) {
	publisher := mocks.NewHandoffPublisher(t)
	svc := newMenuService(publisher)
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	svc.AddToCart(ctx, cart.ID, "1", 2)
	svc.AddToCart(ctx, cart.ID, "8", 1)

	publisher.On("Publish", mock.Anything, mock.AnythingOfType("domain.HandoffEvent")).
		Return(nil).Once()

	handoff, err := svc.OrderHandoff(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hi! I'd like to order: 2x Truffle Risotto, 1x Tiramisu. Total: $68.00", handoff.Message)
	assert.Contains(t, handoff.Link, "https://wa.me/"+domain.Bistro.Phone+"?text=")
	assert.Contains(t, handoff.Link, "Total")

	event := publisher.Calls[0].Arguments.Get(1).(domain.HandoffEvent)
	assert.Equal(t, domain.HandoffOrder, event.Type)
	assert.Equal(t, "whatsapp", event.Channel)
	assert.Equal(t, handoff.Message, event.Message)
}

func TestMenuService_OrderHandoff_EmptyCart(t *testing.T) {
	svc := newMenuService(nil)
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	_, err := svc.OrderHandoff(ctx, cart.ID)
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestMenuService_DeleteCart(t *testing.T) {
	svc := newMenuService(nil)
	ctx := context.Background()

	cart, _ := svc.CreateCart(ctx)
	assert.NoError(t, svc.DeleteCart(ctx, cart.ID))

	_, err := svc.Cart(ctx, cart.ID)
	assert.ErrorIs(t, err, service.ErrCartNotFound)

	err = svc.DeleteCart(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrCartNotFound)
}
