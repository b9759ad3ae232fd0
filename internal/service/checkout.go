package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/checkout"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/events"
)

// CheckoutTotals derives the amounts shown on the checkout page from the
// cart's current contents.
func (s *StorefrontService) CheckoutTotals(ctx context.Context, token string) (checkout.Totals, error) {
	c, err := s.carts.Get(ctx, token)
	if err != nil {
		return checkout.Totals{}, err
	}
	return checkout.ComputeTotals(c, s.shippingRate), nil
}

// Checkout places the cart as an order with the commerce platform. A failed
// submission leaves the cart and stored state untouched. On success the
// cart is cleared exactly once, a local acknowledgment is recorded, and an
// order event is published best effort.
func (s *StorefrontService) Checkout(ctx context.Context, token, requestID string, req domain.CheckoutRequest) (*domain.OrderRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	if req.IdempotencyKey != "" {
		rec, err := s.orders.FindByIdempotencyKey(ctx, req.IdempotencyKey)
		if err == nil {
			s.logger.Info("Checkout replayed from idempotency key",
				zap.String("request_id", requestID),
				zap.Int64("order_id", rec.OrderID))
			return rec, nil
		}
		if !errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
	}

	totals := checkout.ComputeTotals(c, s.shippingRate)

	address := domain.Address{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address1:  req.Address,
		Postcode:  req.Zip,
		Country:   req.Country,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	sub := domain.OrderSubmission{
		PaymentMethod:      req.PaymentMethod,
		PaymentMethodTitle: "Cash on Delivery",
		Billing:            address,
		Shipping:           address,
		Lines:              c.Lines,
		ShippingTotal:      totals.Shipping,
	}

	// Link the order to an existing platform customer when one matches the
	// email; a failed lookup just produces a guest order.
	if customer, err := s.api.FindCustomerByEmail(ctx, req.Email); err != nil {
		s.logger.Warn("Customer lookup failed, placing guest order",
			zap.String("request_id", requestID),
			zap.Error(err))
	} else if customer != nil {
		sub.CustomerID = customer.ID
	}

	ack, err := s.api.CreateOrder(ctx, sub)
	if err != nil {
		s.logger.Error("Order placement failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	rec := &domain.OrderRecord{
		OrderID:        ack.ID,
		Email:          req.Email,
		CustomerID:     sub.CustomerID,
		Lines:          toOrderLines(c.Lines),
		Subtotal:       totals.Subtotal.StringFixed(2),
		Shipping:       totals.Shipping.StringFixed(2),
		Total:          totals.Total.StringFixed(2),
		Status:         ack.Status,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	// The order already exists upstream; a record write failure must not
	// fail the checkout or the client would re-submit.
	if err := s.orders.CreateOrderRecord(ctx, rec); err != nil {
		s.logger.Error("Failed to persist order record",
			zap.String("request_id", requestID),
			zap.Int64("order_id", ack.ID),
			zap.Error(err))
	}

	if err := s.carts.Clear(ctx, token); err != nil {
		s.logger.Error("Failed to clear cart after order",
			zap.String("request_id", requestID),
			zap.String("cart_token", token),
			zap.Error(err))
	}

	event := events.OrderPlacedEvent{
		EventID:   uuid.New().String(),
		OrderID:   ack.ID,
		Email:     req.Email,
		Lines:     rec.Lines,
		Subtotal:  rec.Subtotal,
		Shipping:  rec.Shipping,
		Total:     rec.Total,
		Status:    string(ack.Status),
		Timestamp: time.Now(),
		RequestID: requestID,
	}
	if err := s.producer.PublishOrderPlaced(event); err != nil {
		// Eventual consistency: downstream consumers catch up later.
		s.logger.Error("Failed to publish order event",
			zap.Int64("order_id", ack.ID),
			zap.Error(err))
	}

	s.logger.Info("Order placed",
		zap.String("request_id", requestID),
		zap.Int64("order_id", ack.ID),
		zap.String("total", rec.Total))

	return rec, nil
}

func toOrderLines(lines []domain.CartLine) []domain.OrderLine {
	out := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		ol := domain.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Total:     l.LineTotal().StringFixed(2),
		}
		if l.IsVariant() {
			ol.VariationID = l.ItemID
		}
		out = append(out, ol)
	}
	return out
}
