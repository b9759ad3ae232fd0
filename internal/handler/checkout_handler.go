package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/service"
)

type CheckoutHandler struct {
	storefront *service.StorefrontService
	logger     *zap.Logger
}

func NewCheckoutHandler(storefront *service.StorefrontService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		storefront: storefront,
		logger:     logger,
	}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	token := c.GetHeader(cartTokenHeader)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing cart token"})
		return
	}

	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	requestID := c.GetString("request_id")
	rec, err := h.storefront.Checkout(c.Request.Context(), token, requestID, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order created successfully",
		"order":   rec,
	})
}
