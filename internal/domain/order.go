package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CheckoutRequest carries the shipping/billing fields collected at checkout.
// Payment is cash-on-delivery only; the commerce platform owns capture.
type CheckoutRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Country        string `json:"country" binding:"required"`
	Zip            string `json:"zip" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	PaymentMethod  string `json:"payment_method" binding:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]{10,}$`)
)

// Validate mirrors the storefront checkout form rules.
func (r CheckoutRequest) Validate() error {
	if len(strings.TrimSpace(r.FirstName)) < 2 {
		return &ValidationError{Field: "first_name", Reason: "must be at least 2 characters"}
	}
	if len(strings.TrimSpace(r.LastName)) < 2 {
		return &ValidationError{Field: "last_name", Reason: "must be at least 2 characters"}
	}
	if !emailPattern.MatchString(r.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(strings.TrimSpace(r.Address)) < 5 {
		return &ValidationError{Field: "address", Reason: "must be at least 5 characters"}
	}
	if len(strings.TrimSpace(r.Country)) < 2 {
		return &ValidationError{Field: "country", Reason: "is required"}
	}
	if !zipPattern.MatchString(r.Zip) {
		return &ValidationError{Field: "zip", Reason: "must be a valid ZIP code"}
	}
	if !phonePattern.MatchString(r.Phone) {
		return &ValidationError{Field: "phone", Reason: "must be a valid phone number"}
	}
	if r.PaymentMethod != "cod" {
		return &ValidationError{Field: "payment_method", Reason: "only cash on delivery is supported"}
	}
	return nil
}

// Address in the commerce platform's billing/shipping shape.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// OrderSubmission is the payload handed to the commerce platform when an
// order is placed. Line items are keyed by (product id, optional variant id,
// quantity); the platform reprices them authoritatively.
type OrderSubmission struct {
	PaymentMethod      string
	PaymentMethodTitle string
	Billing            Address
	Shipping           Address
	Lines              []CartLine
	ShippingTotal      decimal.Decimal
	CustomerID         int64
}

// OrderAck is the platform's acknowledgment of a created order.
type OrderAck struct {
	ID        int64       `json:"id"`
	Status    OrderStatus `json:"status"`
	Total     string      `json:"total"`
	CreatedAt time.Time   `json:"date_created"`
}

// OrderRecord is the locally persisted snapshot of a placed order. Monetary
// fields are stored as fixed-point strings; they are an acknowledgment, not
// a ledger.
type OrderRecord struct {
	OrderID        int64       `json:"order_id" dynamodbav:"order_id"`
	Email          string      `json:"email" dynamodbav:"email"`
	CustomerID     int64       `json:"customer_id,omitempty" dynamodbav:"customer_id"`
	Lines          []OrderLine `json:"lines" dynamodbav:"lines"`
	Subtotal       string      `json:"subtotal" dynamodbav:"subtotal"`
	Shipping       string      `json:"shipping" dynamodbav:"shipping"`
	Total          string      `json:"total" dynamodbav:"total"`
	Status         OrderStatus `json:"status" dynamodbav:"status"`
	IdempotencyKey string      `json:"idempotency_key,omitempty" dynamodbav:"idempotency_key"`
	CreatedAt      time.Time   `json:"created_at" dynamodbav:"created_at"`
}

// OrderSummary is a platform order as shown in the account's order history.
type OrderSummary struct {
	ID         int64       `json:"id"`
	Status     OrderStatus `json:"status"`
	Total      string      `json:"total"`
	Currency   string      `json:"currency"`
	CreatedAt  time.Time   `json:"date_created"`
	LineItems  []OrderLine `json:"line_items"`
	CustomerID int64       `json:"customer_id"`
}

type OrderLine struct {
	ProductID   int64  `json:"product_id"`
	VariationID int64  `json:"variation_id,omitempty"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}
