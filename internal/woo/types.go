package woo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// Wire shapes of the WooCommerce REST v3 API, reduced to the fields the
// storefront consumes. Prices arrive as strings and are parsed into decimals
// at this boundary; malformed records are rejected instead of letting zero
// values leak into comparisons.

type wireImage struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type wireCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type wireAttribute struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

type wireVariationAttribute struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Option string `json:"option"`
}

type wireProduct struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	Price            string          `json:"price"`
	RegularPrice     string          `json:"regular_price"`
	SalePrice        string          `json:"sale_price"`
	OnSale           bool            `json:"on_sale"`
	StockStatus      string          `json:"stock_status"`
	Images           []wireImage     `json:"images"`
	Categories       []wireCategory  `json:"categories"`
	Attributes       []wireAttribute `json:"attributes"`
	AverageRating    string          `json:"average_rating"`
	RatingCount      int             `json:"rating_count"`
	Variations       []int64         `json:"variations"`
}

type wireVariation struct {
	ID           int64                    `json:"id"`
	Price        string                   `json:"price"`
	RegularPrice string                   `json:"regular_price"`
	SalePrice    string                   `json:"sale_price"`
	OnSale       bool                     `json:"on_sale"`
	StockStatus  string                   `json:"stock_status"`
	Image        wireImage                `json:"image"`
	Attributes   []wireVariationAttribute `json:"attributes"`
}

type wireReview struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	Reviewer    string `json:"reviewer"`
	Review      string `json:"review"`
	Rating      int    `json:"rating"`
	Verified    bool   `json:"verified"`
	DateCreated string `json:"date_created"`
}

type wireOrder struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	Currency    string `json:"currency"`
	CustomerID  int64  `json:"customer_id"`
	DateCreated string `json:"date_created"`
	LineItems   []struct {
		ProductID   int64  `json:"product_id"`
		VariationID int64  `json:"variation_id"`
		Name        string `json:"name"`
		Quantity    int    `json:"quantity"`
		Total       string `json:"total"`
	} `json:"line_items"`
}

type wireCustomer struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type wireToken struct {
	Token           string `json:"token"`
	UserID          int64  `json:"user_id"`
	UserEmail       string `json:"user_email"`
	UserNicename    string `json:"user_nicename"`
	UserDisplayName string `json:"user_display_name"`
}

// parsePrice accepts the platform's price strings. Empty means "no price
// set" and maps to zero; anything else must parse exactly.
func parsePrice(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: field, Reason: fmt.Sprintf("unparsable price %q", s)}
	}
	return d, nil
}

func toProduct(w wireProduct) (domain.Product, error) {
	if w.ID <= 0 {
		return domain.Product{}, &domain.ValidationError{Field: "id", Reason: "missing product id"}
	}
	if w.Name == "" {
		return domain.Product{}, &domain.ValidationError{Field: "name", Reason: "missing product name"}
	}
	price, err := parsePrice("price", w.Price)
	if err != nil {
		return domain.Product{}, err
	}
	regular, err := parsePrice("regular_price", w.RegularPrice)
	if err != nil {
		return domain.Product{}, err
	}
	sale, err := parsePrice("sale_price", w.SalePrice)
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:               w.ID,
		Name:             w.Name,
		Slug:             w.Slug,
		Type:             domain.ProductType(w.Type),
		Description:      w.Description,
		ShortDescription: w.ShortDescription,
		Price:            price,
		RegularPrice:     regular,
		SalePrice:        sale,
		OnSale:           w.OnSale,
		StockStatus:      domain.StockStatus(w.StockStatus),
		AverageRating:    w.AverageRating,
		RatingCount:      w.RatingCount,
	}
	for _, img := range w.Images {
		p.Images = append(p.Images, domain.Image{Src: img.Src, Alt: img.Alt})
	}
	for _, c := range w.Categories {
		p.Categories = append(p.Categories, domain.Category{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	for _, a := range w.Attributes {
		p.Attributes = append(p.Attributes, domain.Attribute{
			Name:      a.Name,
			Options:   a.Options,
			Variation: a.Variation,
			Visible:   a.Visible,
		})
	}
	return p, nil
}

func toVariant(parentID int64, w wireVariation) (domain.Variant, error) {
	if w.ID <= 0 {
		return domain.Variant{}, &domain.ValidationError{Field: "id", Reason: "missing variation id"}
	}
	price, err := parsePrice("price", w.Price)
	if err != nil {
		return domain.Variant{}, err
	}
	regular, err := parsePrice("regular_price", w.RegularPrice)
	if err != nil {
		return domain.Variant{}, err
	}
	sale, err := parsePrice("sale_price", w.SalePrice)
	if err != nil {
		return domain.Variant{}, err
	}

	v := domain.Variant{
		ID:           w.ID,
		ParentID:     parentID,
		Price:        price,
		RegularPrice: regular,
		SalePrice:    sale,
		OnSale:       w.OnSale,
		StockStatus:  domain.StockStatus(w.StockStatus),
		Image:        domain.Image{Src: w.Image.Src, Alt: w.Image.Alt},
	}
	for _, a := range w.Attributes {
		if a.Name == "" {
			return domain.Variant{}, &domain.ValidationError{Field: "attributes", Reason: "attribute without a name"}
		}
		v.Attributes = append(v.Attributes, domain.AttributeOption{Name: a.Name, Option: a.Option})
	}
	return v, nil
}

func toReview(w wireReview) domain.Review {
	return domain.Review{
		ID:        w.ID,
		ProductID: w.ProductID,
		Reviewer:  w.Reviewer,
		Review:    w.Review,
		Rating:    w.Rating,
		Verified:  w.Verified,
		CreatedAt: w.DateCreated,
	}
}

func toOrderSummary(w wireOrder) domain.OrderSummary {
	created, _ := time.Parse("2006-01-02T15:04:05", w.DateCreated)
	s := domain.OrderSummary{
		ID:         w.ID,
		Status:     domain.OrderStatus(w.Status),
		Total:      w.Total,
		Currency:   w.Currency,
		CreatedAt:  created,
		CustomerID: w.CustomerID,
	}
	for _, li := range w.LineItems {
		s.LineItems = append(s.LineItems, domain.OrderLine{
			ProductID:   li.ProductID,
			VariationID: li.VariationID,
			Name:        li.Name,
			Quantity:    li.Quantity,
			Total:       li.Total,
		})
	}
	return s
}

func toCustomer(w wireCustomer) domain.Customer {
	return domain.Customer{
		ID:        w.ID,
		Email:     w.Email,
		Username:  w.Username,
		FirstName: w.FirstName,
		LastName:  w.LastName,
	}
}
