package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// VariationLister is the slice of the commerce API the loader needs.
type VariationLister interface {
	ListVariations(ctx context.Context, productID int64) ([]domain.Variant, error)
}

// Loader fetches a product's variant catalog, keeping a short-lived Redis
// cache in front of the commerce API. Cache trouble degrades to a direct
// fetch; it never fails a request on its own.
type Loader struct {
	api    VariationLister
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewLoader(api VariationLister, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Loader {
	return &Loader{api: api, cache: cache, ttl: ttl, logger: logger}
}

func cacheKey(productID int64) string {
	return fmt.Sprintf("catalog:variants:%d", productID)
}

// LoadVariants returns the variant list for a product in catalog order.
// Non-variable products yield an empty list.
func (l *Loader) LoadVariants(ctx context.Context, productID int64) ([]domain.Variant, error) {
	if l.cache != nil {
		data, err := l.cache.Get(ctx, cacheKey(productID)).Bytes()
		if err == nil {
			var variants []domain.Variant
			if err := json.Unmarshal(data, &variants); err == nil {
				return variants, nil
			}
			l.logger.Warn("Corrupt variant cache entry, refetching",
				zap.Int64("product_id", productID))
		} else if err != redis.Nil {
			l.logger.Warn("Variant cache read failed",
				zap.Int64("product_id", productID),
				zap.Error(err))
		}
	}

	variants, err := l.api.ListVariations(ctx, productID)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if data, err := json.Marshal(variants); err == nil {
			if err := l.cache.Set(ctx, cacheKey(productID), data, l.ttl).Err(); err != nil {
				l.logger.Warn("Variant cache write failed",
					zap.Int64("product_id", productID),
					zap.Error(err))
			}
		}
	}
	return variants, nil
}
