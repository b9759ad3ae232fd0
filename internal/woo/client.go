package woo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// REST v3 is the catalog/order surface; the JWT plugin endpoints handle
// storefront authentication.
const (
	apiPath = "/wp-json/wc/v3"
	jwtPath = "/wp-json/jwt-auth/v1"
)

// Client talks to a WooCommerce-compatible commerce platform. It is the only
// place wire shapes are parsed; everything past it works with domain types.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	secret     string
}

func NewClient(baseURL, key, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
		secret:     secret,
	}
}

// do performs one API call. Credentials go in the query string, which is how
// the platform's own client libraries authenticate v3 calls. The response
// header is returned for pagination totals.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) (http.Header, error) {
	if query == nil {
		query = url.Values{}
	}
	if c.key != "" {
		query.Set("consumer_key", c.key)
		query.Set("consumer_secret", c.secret)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.NetworkError{Op: op, Status: resp.StatusCode, Message: upstreamMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, &domain.NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return resp.Header, nil
}

// upstreamMessage pulls the human-readable message out of a WooCommerce or
// WordPress error body.
func upstreamMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	if len(data) > 200 {
		data = data[:200]
	}
	return string(data)
}

type ListProductsParams struct {
	Page     int
	PerPage  int
	Search   string
	Category string
	OrderBy  string
	Order    string
	Featured bool
}

type Pagination struct {
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
}

func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) ([]domain.Product, Pagination, error) {
	q := url.Values{}
	q.Set("status", "publish")
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.OrderBy != "" {
		q.Set("orderby", params.OrderBy)
	}
	if params.Order != "" {
		q.Set("order", params.Order)
	}
	if params.Featured {
		q.Set("featured", "true")
	}

	var wire []wireProduct
	header, err := c.do(ctx, "list products", http.MethodGet, apiPath+"/products", q, nil, &wire)
	if err != nil {
		return nil, Pagination{}, err
	}

	products := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		p, err := toProduct(w)
		if err != nil {
			return nil, Pagination{}, err
		}
		products = append(products, p)
	}

	page := Pagination{Page: params.Page, PerPage: params.PerPage}
	page.Total, _ = strconv.Atoi(header.Get("X-WP-Total"))
	page.TotalPages, _ = strconv.Atoi(header.Get("X-WP-TotalPages"))
	return products, page, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	var wire wireProduct
	_, err := c.do(ctx, "get product", http.MethodGet, fmt.Sprintf("%s/products/%d", apiPath, id), nil, nil, &wire)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return toProduct(wire)
}

func (c *Client) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	q := url.Values{}
	q.Set("slug", slug)
	q.Set("status", "publish")

	var wire []wireProduct
	if _, err := c.do(ctx, "get product by slug", http.MethodGet, apiPath+"/products", q, nil, &wire); err != nil {
		return domain.Product{}, err
	}
	if len(wire) == 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return toProduct(wire[0])
}

// ListVariations returns every concrete variant of a configurable product,
// in catalog order. Non-variable products yield an empty list, not an error.
func (c *Client) ListVariations(ctx context.Context, productID int64) ([]domain.Variant, error) {
	q := url.Values{}
	q.Set("per_page", "100")

	var wire []wireVariation
	_, err := c.do(ctx, "list variations", http.MethodGet, fmt.Sprintf("%s/products/%d/variations", apiPath, productID), q, nil, &wire)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return []domain.Variant{}, nil
		}
		return nil, err
	}

	variants := make([]domain.Variant, 0, len(wire))
	for _, w := range wire {
		v, err := toVariant(productID, w)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func (c *Client) ListReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	q := url.Values{}
	q.Set("product", strconv.FormatInt(productID, 10))

	var wire []wireReview
	if _, err := c.do(ctx, "list reviews", http.MethodGet, apiPath+"/products/reviews", q, nil, &wire); err != nil {
		return nil, err
	}
	reviews := make([]domain.Review, 0, len(wire))
	for _, w := range wire {
		reviews = append(reviews, toReview(w))
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	var wire wireReview
	if _, err := c.do(ctx, "create review", http.MethodPost, apiPath+"/products/reviews", nil, in, &wire); err != nil {
		return domain.Review{}, err
	}
	return toReview(wire), nil
}

type orderLineItem struct {
	ProductID   int64 `json:"product_id"`
	VariationID int64 `json:"variation_id,omitempty"`
	Quantity    int   `json:"quantity"`
}

type shippingLine struct {
	MethodID    string `json:"method_id"`
	MethodTitle string `json:"method_title"`
	Total       string `json:"total"`
}

type orderPayload struct {
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodTitle string          `json:"payment_method_title"`
	SetPaid            bool            `json:"set_paid"`
	Billing            domain.Address  `json:"billing"`
	Shipping           domain.Address  `json:"shipping"`
	LineItems          []orderLineItem `json:"line_items"`
	ShippingLines      []shippingLine  `json:"shipping_lines"`
	CustomerID         int64           `json:"customer_id,omitempty"`
}

// CreateOrder submits an order. The platform owns pricing, tax, and payment
// state from here on; the returned ack is all this service keeps.
func (c *Client) CreateOrder(ctx context.Context, sub domain.OrderSubmission) (domain.OrderAck, error) {
	payload := orderPayload{
		PaymentMethod:      sub.PaymentMethod,
		PaymentMethodTitle: sub.PaymentMethodTitle,
		SetPaid:            false,
		Billing:            sub.Billing,
		Shipping:           sub.Shipping,
		CustomerID:         sub.CustomerID,
		ShippingLines: []shippingLine{{
			MethodID:    "flat_rate",
			MethodTitle: "Flat Rate",
			Total:       sub.ShippingTotal.StringFixed(2),
		}},
	}
	for _, l := range sub.Lines {
		item := orderLineItem{ProductID: l.ProductID, Quantity: l.Quantity}
		if l.IsVariant() {
			item.VariationID = l.ItemID
		}
		payload.LineItems = append(payload.LineItems, item)
	}

	var wire wireOrder
	if _, err := c.do(ctx, "create order", http.MethodPost, apiPath+"/orders", nil, payload, &wire); err != nil {
		return domain.OrderAck{}, err
	}

	summary := toOrderSummary(wire)
	return domain.OrderAck{
		ID:        summary.ID,
		Status:    summary.Status,
		Total:     summary.Total,
		CreatedAt: summary.CreatedAt,
	}, nil
}

func (c *Client) ListOrders(ctx context.Context, customerID int64) ([]domain.OrderSummary, error) {
	q := url.Values{}
	q.Set("customer", strconv.FormatInt(customerID, 10))
	q.Set("per_page", "50")

	var wire []wireOrder
	if _, err := c.do(ctx, "list orders", http.MethodGet, apiPath+"/orders", q, nil, &wire); err != nil {
		return nil, err
	}
	orders := make([]domain.OrderSummary, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, toOrderSummary(w))
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID int64) (domain.OrderSummary, error) {
	var wire wireOrder
	_, err := c.do(ctx, "get order", http.MethodGet, fmt.Sprintf("%s/orders/%d", apiPath, orderID), nil, nil, &wire)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return domain.OrderSummary{}, domain.ErrOrderNotFound
		}
		return domain.OrderSummary{}, err
	}
	return toOrderSummary(wire), nil
}

// FindCustomerByEmail returns nil without error when no customer matches.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("per_page", "1")

	var wire []wireCustomer
	if _, err := c.do(ctx, "find customer", http.MethodGet, apiPath+"/customers", q, nil, &wire); err != nil {
		return nil, err
	}
	if len(wire) == 0 {
		return nil, nil
	}
	customer := toCustomer(wire[0])
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req domain.RegisterRequest) (domain.Customer, error) {
	payload := map[string]string{
		"email":      req.Email,
		"username":   req.Username,
		"password":   req.Password,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	}
	var wire wireCustomer
	if _, err := c.do(ctx, "create customer", http.MethodPost, apiPath+"/customers", nil, payload, &wire); err != nil {
		return domain.Customer{}, err
	}
	return toCustomer(wire), nil
}

// Login exchanges credentials for a JWT at the WordPress auth endpoint. The
// token is never inspected locally.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Session, error) {
	payload := map[string]string{"username": username, "password": password}

	var wire wireToken
	if _, err := c.do(ctx, "login", http.MethodPost, jwtPath+"/token", nil, payload, &wire); err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token:       wire.Token,
		UserID:      wire.UserID,
		Email:       wire.UserEmail,
		Username:    wire.UserNicename,
		DisplayName: wire.UserDisplayName,
	}, nil
}

// ValidateToken asks the auth endpoint whether a session token is still good.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+jwtPath+"/token/validate", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "validate token", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return &domain.NetworkError{Op: "validate token", Status: resp.StatusCode, Message: upstreamMessage(data)}
	}
	return nil
}

func isStatus(err error, status int) bool {
	var netErr *domain.NetworkError
	return errors.As(err, &netErr) && netErr.Status == status
}
