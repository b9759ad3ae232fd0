package cart

import (
	"context"

	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// Aggregator applies cart mutations through a load-mutate-persist cycle.
// Every successful mutation is persisted before it returns; a rejected
// mutation (ValidationError) leaves stored state untouched.
type Aggregator struct {
	storage Storage
	logger  *zap.Logger
}

func NewAggregator(storage Storage, logger *zap.Logger) *Aggregator {
	return &Aggregator{storage: storage, logger: logger}
}

func (a *Aggregator) Get(ctx context.Context, token string) (*domain.Cart, error) {
	return a.storage.Load(ctx, token)
}

func (a *Aggregator) Add(ctx context.Context, token string, line domain.CartLine, qty int) (*domain.Cart, error) {
	c, err := a.storage.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := c.Add(line, qty); err != nil {
		return nil, err
	}
	if err := a.storage.Save(ctx, c); err != nil {
		return nil, err
	}
	a.logger.Debug("Cart line added",
		zap.String("cart_token", token),
		zap.Int64("item_id", line.ItemID),
		zap.Int("quantity", qty))
	return c, nil
}

func (a *Aggregator) UpdateQuantity(ctx context.Context, token string, itemID int64, qty int) (*domain.Cart, error) {
	c, err := a.storage.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(itemID, qty)
	if err := a.storage.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (a *Aggregator) Remove(ctx context.Context, token string, itemID int64) (*domain.Cart, error) {
	c, err := a.storage.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	c.Remove(itemID)
	if err := a.storage.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties and deletes the stored cart. Called after a successful
// order placement.
func (a *Aggregator) Clear(ctx context.Context, token string) error {
	return a.storage.Delete(ctx, token)
}
