package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/cart"
	"github.com/OmarHosamCodes/noocommerce/internal/catalog"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/events"
	"github.com/OmarHosamCodes/noocommerce/internal/service"
	"github.com/OmarHosamCodes/noocommerce/internal/woo"
)

// stubAPI serves a fixed catalog; everything unrelated to the cart routes
// returns zero values.
type stubAPI struct {
	products map[int64]domain.Product
	variants map[int64][]domain.Variant
}

func (s *stubAPI) ListProducts(ctx context.Context, params woo.ListProductsParams) ([]domain.Product, woo.Pagination, error) {
	return nil, woo.Pagination{}, nil
}

func (s *stubAPI) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *stubAPI) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	return domain.Product{}, domain.ErrProductNotFound
}

func (s *stubAPI) ListVariations(ctx context.Context, productID int64) ([]domain.Variant, error) {
	return s.variants[productID], nil
}

func (s *stubAPI) ListReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	return nil, nil
}

func (s *stubAPI) CreateReview(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	return domain.Review{}, nil
}

func (s *stubAPI) CreateOrder(ctx context.Context, sub domain.OrderSubmission) (domain.OrderAck, error) {
	return domain.OrderAck{}, nil
}

func (s *stubAPI) ListOrders(ctx context.Context, customerID int64) ([]domain.OrderSummary, error) {
	return nil, nil
}

func (s *stubAPI) GetOrder(ctx context.Context, orderID int64) (domain.OrderSummary, error) {
	return domain.OrderSummary{}, domain.ErrOrderNotFound
}

func (s *stubAPI) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return nil, nil
}

func (s *stubAPI) CreateCustomer(ctx context.Context, req domain.RegisterRequest) (domain.Customer, error) {
	return domain.Customer{}, nil
}

func (s *stubAPI) Login(ctx context.Context, username, password string) (domain.Session, error) {
	return domain.Session{}, nil
}

func (s *stubAPI) ValidateToken(ctx context.Context, token string) error { return nil }

type stubRecords struct{}

func (stubRecords) CreateOrderRecord(ctx context.Context, rec *domain.OrderRecord) error { return nil }
func (stubRecords) GetOrderRecord(ctx context.Context, orderID int64) (*domain.OrderRecord, error) {
	return nil, domain.ErrOrderNotFound
}
func (stubRecords) FindByIdempotencyKey(ctx context.Context, key string) (*domain.OrderRecord, error) {
	return nil, domain.ErrOrderNotFound
}

type stubSessions struct{}

func (stubSessions) Save(ctx context.Context, sess *domain.Session) error { return nil }
func (stubSessions) Load(ctx context.Context, token string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}
func (stubSessions) Delete(ctx context.Context, token string) error { return nil }

type stubPublisher struct{}

func (stubPublisher) PublishOrderPlaced(event events.OrderPlacedEvent) error { return nil }

func newCartRouter(t *testing.T, api *stubAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	svc := service.NewStorefrontService(service.Deps{
		API:          api,
		Catalog:      catalog.NewLoader(api, nil, time.Minute, logger),
		Carts:        cart.NewAggregator(cart.NewMemoryStorage(), logger),
		Orders:       stubRecords{},
		Sessions:     stubSessions{},
		Producer:     stubPublisher{},
		ShippingRate: decimal.NewFromInt(250),
		Currency:     "USD",
		Logger:       logger,
	})

	h := NewCartHandler(svc, logger)
	router := gin.New()
	router.GET("/cart", h.GetCart)
	router.POST("/cart/items", h.AddItem)
	router.PATCH("/cart/items/:id", h.UpdateItem)
	router.DELETE("/cart/items/:id", h.RemoveItem)
	router.DELETE("/cart", h.ClearCart)
	return router
}

func TestGetCartMintsToken(t *testing.T) {
	router := newCartRouter(t, &stubAPI{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Cart-Token"))
}

func TestAddItemReturnsCartState(t *testing.T) {
	api := &stubAPI{products: map[int64]domain.Product{
		7: {ID: 7, Name: "mug", Type: domain.ProductTypeSimple, Price: decimal.RequireFromString("19.99")},
	}}
	router := newCartRouter(t, api)

	body, _ := json.Marshal(gin.H{"product_id": 7, "quantity": 2})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	req.Header.Set("X-Cart-Token", "tok-1")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-1", w.Header().Get("X-Cart-Token"))

	var resp struct {
		TotalQuantity int    `json:"total_quantity"`
		Subtotal      string `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalQuantity)
	assert.Equal(t, "39.98", resp.Subtotal)
}

func TestAddItemIncompleteSelectionConflicts(t *testing.T) {
	api := &stubAPI{
		products: map[int64]domain.Product{
			10: {ID: 10, Name: "hoodie", Type: domain.ProductTypeVariable},
		},
		variants: map[int64][]domain.Variant{
			10: {
				{ID: 101, ParentID: 10, Price: decimal.RequireFromString("10.00"),
					Attributes: []domain.AttributeOption{{Name: "Color", Option: "Red"}}},
				{ID: 102, ParentID: 10, Price: decimal.RequireFromString("12.00"),
					Attributes: []domain.AttributeOption{{Name: "Color", Option: "Blue"}}},
			},
		},
	}
	router := newCartRouter(t, api)

	body, _ := json.Marshal(gin.H{"product_id": 10})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddItemUnknownProductNotFound(t *testing.T) {
	router := newCartRouter(t, &stubAPI{})

	body, _ := json.Marshal(gin.H{"product_id": 404})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCartNoContent(t *testing.T) {
	router := newCartRouter(t, &stubAPI{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req.Header.Set("X-Cart-Token", "tok-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
