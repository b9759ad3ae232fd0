package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/cart"
	"github.com/OmarHosamCodes/noocommerce/internal/catalog"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/events"
	"github.com/OmarHosamCodes/noocommerce/internal/woo"
)

// CommerceAPI is the slice of the commerce platform the storefront consumes.
// Implemented by woo.Client; faked in tests.
type CommerceAPI interface {
	ListProducts(ctx context.Context, params woo.ListProductsParams) ([]domain.Product, woo.Pagination, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (domain.Product, error)
	ListVariations(ctx context.Context, productID int64) ([]domain.Variant, error)
	ListReviews(ctx context.Context, productID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, in domain.ReviewInput) (domain.Review, error)
	CreateOrder(ctx context.Context, sub domain.OrderSubmission) (domain.OrderAck, error)
	ListOrders(ctx context.Context, customerID int64) ([]domain.OrderSummary, error)
	GetOrder(ctx context.Context, orderID int64) (domain.OrderSummary, error)
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, req domain.RegisterRequest) (domain.Customer, error)
	Login(ctx context.Context, username, password string) (domain.Session, error)
	ValidateToken(ctx context.Context, token string) error
}

// OrderRecords persists checkout acknowledgments and idempotency pointers.
type OrderRecords interface {
	CreateOrderRecord(ctx context.Context, rec *domain.OrderRecord) error
	GetOrderRecord(ctx context.Context, orderID int64) (*domain.OrderRecord, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.OrderRecord, error)
}

// SessionStore persists authenticated-session snapshots.
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session) error
	Load(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// EventPublisher emits order lifecycle events.
type EventPublisher interface {
	PublishOrderPlaced(event events.OrderPlacedEvent) error
}

// Deps collects the service's collaborators.
type Deps struct {
	API          CommerceAPI
	Catalog      *catalog.Loader
	Carts        *cart.Aggregator
	Orders       OrderRecords
	Sessions     SessionStore
	Producer     EventPublisher
	ShippingRate decimal.Decimal
	Currency     string
	Logger       *zap.Logger
}

// StorefrontService wires the storefront flows together: catalog reads,
// variant resolution, cart mutation, checkout, and account access.
type StorefrontService struct {
	api          CommerceAPI
	catalog      *catalog.Loader
	carts        *cart.Aggregator
	orders       OrderRecords
	sessions     SessionStore
	producer     EventPublisher
	shippingRate decimal.Decimal
	currency     string
	logger       *zap.Logger
}

func NewStorefrontService(deps Deps) *StorefrontService {
	return &StorefrontService{
		api:          deps.API,
		catalog:      deps.Catalog,
		carts:        deps.Carts,
		orders:       deps.Orders,
		sessions:     deps.Sessions,
		producer:     deps.Producer,
		shippingRate: deps.ShippingRate,
		currency:     deps.Currency,
		logger:       deps.Logger,
	}
}
