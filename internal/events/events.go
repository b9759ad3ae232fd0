package events

import (
	"time"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// OrderPlacedEvent is published after the commerce platform acknowledges an
// order. Consumers sit downstream (notifications, analytics); publishing is
// best effort and never fails the checkout.
type OrderPlacedEvent struct {
	EventID   string             `json:"event_id"`
	OrderID   int64              `json:"order_id"`
	Email     string             `json:"email"`
	Lines     []domain.OrderLine `json:"lines"`
	Subtotal  string             `json:"subtotal"`
	Shipping  string             `json:"shipping"`
	Total     string             `json:"total"`
	Status    string             `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	RequestID string             `json:"request_id"`
}
