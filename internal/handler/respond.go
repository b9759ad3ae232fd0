package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// respondError maps domain errors onto HTTP statuses. Validation problems
// are the client's to fix, unresolved selections block the action with a
// conflict, and upstream failures surface as a bad gateway with the
// platform's message so the UI can show something useful.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	requestID := c.GetString("request_id")

	var validationErr *domain.ValidationError
	var networkErr *domain.NetworkError

	switch {
	case errors.Is(err, domain.ErrUnresolvedVariant):
		c.JSON(http.StatusConflict, gin.H{
			"error":      "complete your selection before adding to cart",
			"request_id": requestID,
		})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "cart is empty",
			"request_id": requestID,
		})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      validationErr.Error(),
			"request_id": requestID,
		})
	case errors.As(err, &networkErr):
		if networkErr.Status == http.StatusUnauthorized || networkErr.Status == http.StatusForbidden {
			c.JSON(http.StatusUnauthorized, gin.H{"error": networkErr.Message})
			return
		}
		logger.Error("Commerce platform request failed",
			zap.String("request_id", requestID),
			zap.String("op", networkErr.Op),
			zap.Int("upstream_status", networkErr.Status),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      "commerce platform request failed",
			"details":    networkErr.Message,
			"request_id": requestID,
		})
	default:
		logger.Error("Unhandled error",
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "internal error",
			"request_id": requestID,
		})
	}
}
