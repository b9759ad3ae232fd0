package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/cart"
	"github.com/OmarHosamCodes/noocommerce/internal/catalog"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/events"
	"github.com/OmarHosamCodes/noocommerce/internal/woo"
)

// fakeAPI is an in-memory stand-in for the commerce platform.
type fakeAPI struct {
	mu             sync.Mutex
	products       map[int64]domain.Product
	variants       map[int64][]domain.Variant
	customers      map[string]domain.Customer
	orders         []domain.OrderSubmission
	orderHistory   map[int64]domain.OrderSummary
	nextOrderID    int64
	createOrderErr error
	loginSession   *domain.Session
	loginErr       error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		products:     map[int64]domain.Product{},
		variants:     map[int64][]domain.Variant{},
		customers:    map[string]domain.Customer{},
		orderHistory: map[int64]domain.OrderSummary{},
		nextOrderID:  1000,
	}
}

func (f *fakeAPI) ListProducts(ctx context.Context, params woo.ListProductsParams) ([]domain.Product, woo.Pagination, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, woo.Pagination{Total: len(out)}, nil
}

func (f *fakeAPI) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeAPI) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (f *fakeAPI) ListVariations(ctx context.Context, productID int64) ([]domain.Variant, error) {
	return f.variants[productID], nil
}

func (f *fakeAPI) ListReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	return nil, nil
}

func (f *fakeAPI) CreateReview(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	return domain.Review{ID: 1, ProductID: in.ProductID, Rating: in.Rating}, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, sub domain.OrderSubmission) (domain.OrderAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createOrderErr != nil {
		return domain.OrderAck{}, f.createOrderErr
	}
	f.orders = append(f.orders, sub)
	f.nextOrderID++
	return domain.OrderAck{
		ID:        f.nextOrderID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeAPI) ListOrders(ctx context.Context, customerID int64) ([]domain.OrderSummary, error) {
	var out []domain.OrderSummary
	for _, o := range f.orderHistory {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetOrder(ctx context.Context, orderID int64) (domain.OrderSummary, error) {
	o, ok := f.orderHistory[orderID]
	if !ok {
		return domain.OrderSummary{}, domain.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeAPI) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	c, ok := f.customers[email]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeAPI) CreateCustomer(ctx context.Context, req domain.RegisterRequest) (domain.Customer, error) {
	c := domain.Customer{ID: int64(len(f.customers) + 1), Email: req.Email, Username: req.Username}
	f.customers[req.Email] = c
	return c, nil
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if f.loginErr != nil {
		return domain.Session{}, f.loginErr
	}
	if f.loginSession != nil {
		return *f.loginSession, nil
	}
	return domain.Session{Token: "jwt-token", Username: username}, nil
}

func (f *fakeAPI) ValidateToken(ctx context.Context, token string) error { return nil }

// fakeOrderRecords keeps records in a map keyed by order id.
type fakeOrderRecords struct {
	mu      sync.Mutex
	records map[int64]*domain.OrderRecord
	byKey   map[string]int64
	saveErr error
}

func newFakeOrderRecords() *fakeOrderRecords {
	return &fakeOrderRecords{
		records: map[int64]*domain.OrderRecord{},
		byKey:   map[string]int64{},
	}
}

func (f *fakeOrderRecords) CreateOrderRecord(ctx context.Context, rec *domain.OrderRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[rec.OrderID] = rec
	if rec.IdempotencyKey != "" {
		f.byKey[rec.IdempotencyKey] = rec.OrderID
	}
	return nil
}

func (f *fakeOrderRecords) GetOrderRecord(ctx context.Context, orderID int64) (*domain.OrderRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return rec, nil
}

func (f *fakeOrderRecords) FindByIdempotencyKey(ctx context.Context, key string) (*domain.OrderRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byKey[key]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return f.records[id], nil
}

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessions) Save(ctx context.Context, sess *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sess.Token] = sess
	return nil
}

func (f *fakeSessions) Load(ctx context.Context, token string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.OrderPlacedEvent
}

func (f *fakePublisher) PublishOrderPlaced(event events.OrderPlacedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type fixture struct {
	api      *fakeAPI
	orders   *fakeOrderRecords
	sessions *fakeSessions
	pub      *fakePublisher
	carts    *cart.Aggregator
	svc      *StorefrontService
}

func newFixture() *fixture {
	logger := zap.NewNop()
	api := newFakeAPI()
	orders := newFakeOrderRecords()
	sessions := newFakeSessions()
	pub := &fakePublisher{}
	carts := cart.NewAggregator(cart.NewMemoryStorage(), logger)

	svc := NewStorefrontService(Deps{
		API:          api,
		Catalog:      catalog.NewLoader(api, nil, time.Minute, logger),
		Carts:        carts,
		Orders:       orders,
		Sessions:     sessions,
		Producer:     pub,
		ShippingRate: decimal.NewFromInt(250),
		Currency:     "USD",
		Logger:       logger,
	})

	return &fixture{api: api, orders: orders, sessions: sessions, pub: pub, carts: carts, svc: svc}
}

func simpleProduct(id int64, name, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Slug:  name,
		Type:  domain.ProductTypeSimple,
		Price: decimal.RequireFromString(price),
	}
}

func variableProduct(id int64, name string) domain.Product {
	return domain.Product{
		ID:   id,
		Name: name,
		Slug: name,
		Type: domain.ProductTypeVariable,
		Attributes: []domain.Attribute{
			{Name: "Color", Options: []string{"Red", "Blue"}, Variation: true},
			{Name: "Size", Options: []string{"M", "L"}, Variation: true},
		},
	}
}

func testVariant(id, parentID int64, price, color, size string) domain.Variant {
	return domain.Variant{
		ID:       id,
		ParentID: parentID,
		Price:    decimal.RequireFromString(price),
		Attributes: []domain.AttributeOption{
			{Name: "Color", Option: color},
			{Name: "Size", Option: size},
		},
	}
}

func checkoutRequest(key string) domain.CheckoutRequest {
	return domain.CheckoutRequest{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		Address:        "1 Main Street",
		Country:        "US",
		Zip:            "12345",
		Phone:          "555-000-1234",
		PaymentMethod:  "cod",
		IdempotencyKey: key,
	}
}
