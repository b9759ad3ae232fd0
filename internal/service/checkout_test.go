package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	fx := newFixture()
	fx.api.products[7] = simpleProduct(7, "mug", "25.00")
	fx.api.customers["jane@example.com"] = domain.Customer{ID: 33, Email: "jane@example.com"}

	ctx := context.Background()
	_, err := fx.svc.AddToCart(ctx, "tok", domain.AddToCartRequest{ProductID: 7, Quantity: 4})
	require.NoError(t, err)

	rec, err := fx.svc.Checkout(ctx, "tok", "req-1", checkoutRequest(""))
	require.NoError(t, err)

	assert.Equal(t, "100.00", rec.Subtotal)
	assert.Equal(t, "250.00", rec.Shipping)
	assert.Equal(t, "350.00", rec.Total)
	assert.Equal(t, domain.OrderStatusPending, rec.Status)
	assert.Equal(t, int64(33), rec.CustomerID)

	// One submission went upstream, with the matched customer attached.
	require.Len(t, fx.api.orders, 1)
	assert.Equal(t, int64(33), fx.api.orders[0].CustomerID)
	assert.Equal(t, "cod", fx.api.orders[0].PaymentMethod)

	// Cart cleared exactly once, event published.
	c, err := fx.svc.GetCart(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	require.Len(t, fx.pub.events, 1)
	assert.Equal(t, rec.OrderID, fx.pub.events[0].OrderID)
	assert.Equal(t, "req-1", fx.pub.events[0].RequestID)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.Checkout(context.Background(), "tok", "req-1", checkoutRequest(""))
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, fx.api.orders)
}

func TestCheckoutValidationFailureLeavesCartIntact(t *testing.T) {
	fx := newFixture()
	fx.api.products[7] = simpleProduct(7, "mug", "25.00")

	ctx := context.Background()
	_, err := fx.svc.AddToCart(ctx, "tok", domain.AddToCartRequest{ProductID: 7})
	require.NoError(t, err)

	bad := checkoutRequest("")
	bad.Zip = "not-a-zip"

	var validationErr *domain.ValidationError
	_, err = fx.svc.Checkout(ctx, "tok", "req-1", bad)
	require.ErrorAs(t, err, &validationErr)

	c, err := fx.svc.GetCart(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, c.IsEmpty())
	assert.Empty(t, fx.api.orders)
}

func TestCheckoutUpstreamFailureLeavesStateUnchanged(t *testing.T) {
	fx := newFixture()
	fx.api.products[7] = simpleProduct(7, "mug", "25.00")
	fx.api.createOrderErr = &domain.NetworkError{Op: "create order", Status: 500, Message: "boom"}

	ctx := context.Background()
	_, err := fx.svc.AddToCart(ctx, "tok", domain.AddToCartRequest{ProductID: 7})
	require.NoError(t, err)

	var networkErr *domain.NetworkError
	_, err = fx.svc.Checkout(ctx, "tok", "req-1", checkoutRequest(""))
	require.ErrorAs(t, err, &networkErr)

	// No partial mutation: cart intact, nothing recorded, no event.
	c, err := fx.svc.GetCart(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, c.IsEmpty())
	assert.Empty(t, fx.orders.records)
	assert.Empty(t, fx.pub.events)
}

func TestCheckoutIdempotencyKeyReplaysExistingOrder(t *testing.T) {
	fx := newFixture()
	fx.api.products[7] = simpleProduct(7, "mug", "25.00")

	ctx := context.Background()
	_, err := fx.svc.AddToCart(ctx, "tok", domain.AddToCartRequest{ProductID: 7})
	require.NoError(t, err)

	first, err := fx.svc.Checkout(ctx, "tok", "req-1", checkoutRequest("key-1"))
	require.NoError(t, err)

	// The retried request must not produce a second upstream order even
	// though the cart is already empty.
	second, err := fx.svc.Checkout(ctx, "tok", "req-2", checkoutRequest("key-1"))
	require.NoError(t, err)

	assert.Equal(t, first.OrderID, second.OrderID)
	assert.Len(t, fx.api.orders, 1)
}

func TestCheckoutGuestOrderWhenNoCustomerMatches(t *testing.T) {
	fx := newFixture()
	fx.api.products[7] = simpleProduct(7, "mug", "25.00")

	ctx := context.Background()
	_, err := fx.svc.AddToCart(ctx, "tok", domain.AddToCartRequest{ProductID: 7})
	require.NoError(t, err)

	rec, err := fx.svc.Checkout(ctx, "tok", "req-1", checkoutRequest(""))
	require.NoError(t, err)
	assert.Zero(t, rec.CustomerID)
}

func TestCheckoutVariantLineSubmitsBothIdentifiers(t *testing.T) {
	fx := newFixture()
	fx.api.products[10] = variableProduct(10, "hoodie")
	fx.api.variants[10] = []domain.Variant{
		testVariant(101, 10, "10.00", "Red", "M"),
	}

	ctx := context.Background()
	_, err := fx.svc.AddToCart(ctx, "tok", domain.AddToCartRequest{
		ProductID: 10,
		Selection: map[string]string{"Color": "Red", "Size": "M"},
	})
	require.NoError(t, err)

	rec, err := fx.svc.Checkout(ctx, "tok", "req-1", checkoutRequest(""))
	require.NoError(t, err)

	require.Len(t, rec.Lines, 1)
	assert.Equal(t, int64(10), rec.Lines[0].ProductID)
	assert.Equal(t, int64(101), rec.Lines[0].VariationID)

	require.Len(t, fx.api.orders, 1)
	require.Len(t, fx.api.orders[0].Lines, 1)
	assert.Equal(t, int64(101), fx.api.orders[0].Lines[0].ItemID)
}
