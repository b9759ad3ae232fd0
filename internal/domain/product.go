package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeGrouped  ProductType = "grouped"
	ProductTypeExternal ProductType = "external"
	ProductTypeVariable ProductType = "variable"
)

type StockStatus string

const (
	StockStatusInStock    StockStatus = "instock"
	StockStatusOutOfStock StockStatus = "outofstock"
	StockStatusBackorder  StockStatus = "onbackorder"
)

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Attribute is a named axis of choice on a configurable product. Only
// attributes with Variation set participate in variant matching; the rest
// are descriptive.
type Attribute struct {
	Name      string   `json:"name"`
	Options   []string `json:"options"`
	Variation bool     `json:"variation"`
	Visible   bool     `json:"visible"`
}

// AttributeOption is one recorded (attribute name, option value) pair on a
// concrete variant.
type AttributeOption struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

type Product struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Type             ProductType     `json:"type"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"short_description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	RegularPrice     decimal.Decimal `json:"regular_price"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	OnSale           bool            `json:"on_sale"`
	StockStatus      StockStatus     `json:"stock_status"`
	Images           []Image         `json:"images,omitempty"`
	Categories       []Category      `json:"categories,omitempty"`
	Attributes       []Attribute     `json:"attributes,omitempty"`
	AverageRating    string          `json:"average_rating,omitempty"`
	RatingCount      int             `json:"rating_count,omitempty"`
}

// Variant is one concrete purchasable combination of attribute values for a
// configurable product. Variants are immutable once loaded and belong to
// exactly one parent product.
type Variant struct {
	ID           int64             `json:"id"`
	ParentID     int64             `json:"parent_id"`
	Price        decimal.Decimal   `json:"price"`
	RegularPrice decimal.Decimal   `json:"regular_price"`
	SalePrice    decimal.Decimal   `json:"sale_price"`
	OnSale       bool              `json:"on_sale"`
	StockStatus  StockStatus       `json:"stock_status"`
	Image        Image             `json:"image"`
	Attributes   []AttributeOption `json:"attributes"`
}

// Label renders the variant's attribute choices for display, e.g.
// "Color: Red, Size: M".
func (v Variant) Label() string {
	parts := make([]string, 0, len(v.Attributes))
	for _, a := range v.Attributes {
		parts = append(parts, a.Name+": "+a.Option)
	}
	return strings.Join(parts, ", ")
}

// Option returns the variant's recorded value for the named attribute,
// compared case-insensitively.
func (v Variant) Option(name string) (string, bool) {
	for _, a := range v.Attributes {
		if strings.EqualFold(a.Name, name) {
			return a.Option, true
		}
	}
	return "", false
}

type Review struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Reviewer  string `json:"reviewer"`
	Review    string `json:"review"`
	Rating    int    `json:"rating"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"date_created"`
}

type ReviewInput struct {
	ProductID     int64  `json:"product_id"`
	Reviewer      string `json:"reviewer"`
	ReviewerEmail string `json:"reviewer_email"`
	Review        string `json:"review"`
	Rating        int    `json:"rating"`
}

// Validate checks a review submission at the API boundary.
func (r ReviewInput) Validate() error {
	if r.ProductID <= 0 {
		return &ValidationError{Field: "product_id", Reason: "must be a positive id"}
	}
	if r.Rating < 1 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if strings.TrimSpace(r.Reviewer) == "" {
		return &ValidationError{Field: "reviewer", Reason: "is required"}
	}
	if strings.TrimSpace(r.Review) == "" {
		return &ValidationError{Field: "review", Reason: "is required"}
	}
	return nil
}
