package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/cart"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/service"
)

// cartTokenHeader carries the client's opaque cart identity. A missing
// header gets a fresh token, echoed back so the client can persist it.
const cartTokenHeader = "X-Cart-Token"

type CartHandler struct {
	storefront *service.StorefrontService
	logger     *zap.Logger
}

func NewCartHandler(storefront *service.StorefrontService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		storefront: storefront,
		logger:     logger,
	}
}

func (h *CartHandler) cartToken(c *gin.Context) string {
	token := c.GetHeader(cartTokenHeader)
	if token == "" {
		token = cart.NewToken()
	}
	c.Header(cartTokenHeader, token)
	return token
}

func cartResponse(ch *domain.Cart) gin.H {
	return gin.H{
		"cart":           ch,
		"total_quantity": ch.TotalQuantity(),
		"subtotal":       ch.Subtotal(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	ch, err := h.storefront.GetCart(c.Request.Context(), h.cartToken(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(ch))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req domain.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	ch, err := h.storefront.AddToCart(c.Request.Context(), h.cartToken(c), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(ch))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	ch, err := h.storefront.UpdateCartQuantity(c.Request.Context(), h.cartToken(c), itemID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(ch))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	ch, err := h.storefront.RemoveFromCart(c.Request.Context(), h.cartToken(c), itemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(ch))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.storefront.ClearCart(c.Request.Context(), h.cartToken(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Totals previews the checkout amounts for the current cart.
func (h *CartHandler) Totals(c *gin.Context) {
	totals, err := h.storefront.CheckoutTotals(c.Request.Context(), h.cartToken(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
