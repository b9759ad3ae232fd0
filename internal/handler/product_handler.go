package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/catalog"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/service"
	"github.com/OmarHosamCodes/noocommerce/internal/woo"
)

type ProductHandler struct {
	storefront *service.StorefrontService
	logger     *zap.Logger
}

func NewProductHandler(storefront *service.StorefrontService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		storefront: storefront,
		logger:     logger,
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "12"))

	params := woo.ListProductsParams{
		Page:     page,
		PerPage:  perPage,
		Search:   c.Query("search"),
		Category: c.Query("category"),
		OrderBy:  c.Query("orderby"),
		Order:    c.Query("order"),
		Featured: c.Query("featured") == "true",
	}

	products, pagination, err := h.storefront.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": pagination,
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.storefront.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListVariations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	variants, err := h.storefront.ListVariations(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

// ResolveVariant answers the product page's "which variant is this
// selection" question. 409 means the selection doesn't pin down a variant
// yet and the page should keep showing parent-product defaults.
func (h *ProductHandler) ResolveVariant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req struct {
		Selection map[string]string `json:"selection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	variant, err := h.storefront.ResolveVariant(c.Request.Context(), id, catalog.SelectionFrom(req.Selection))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *ProductHandler) ListReviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	reviews, err := h.storefront.ListReviews(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ProductHandler) CreateReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var in domain.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}
	in.ProductID = id

	review, err := h.storefront.CreateReview(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
