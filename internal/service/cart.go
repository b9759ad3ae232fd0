package service

import (
	"context"

	"github.com/OmarHosamCodes/noocommerce/internal/catalog"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

func (s *StorefrontService) GetCart(ctx context.Context, token string) (*domain.Cart, error) {
	return s.carts.Get(ctx, token)
}

// AddToCart builds a cart line for a product and puts it in the cart. For a
// variable product the selection must resolve to a concrete variant first;
// an unresolved selection blocks the add entirely.
func (s *StorefrontService) AddToCart(ctx context.Context, token string, req domain.AddToCartRequest) (*domain.Cart, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	product, err := s.api.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	var line domain.CartLine
	if product.Type == domain.ProductTypeVariable {
		if len(req.Selection) == 0 {
			return nil, domain.ErrUnresolvedVariant
		}
		variant, err := s.ResolveVariant(ctx, product.ID, catalog.SelectionFrom(req.Selection))
		if err != nil {
			return nil, err
		}
		line = domain.CartLine{
			ItemID:       variant.ID,
			ProductID:    product.ID,
			Name:         product.Name,
			VariantLabel: variant.Label(),
			UnitPrice:    variant.Price,
			Image:        variant.Image.Src,
		}
		if line.Image == "" && len(product.Images) > 0 {
			line.Image = product.Images[0].Src
		}
	} else {
		line = domain.CartLine{
			ItemID:    product.ID,
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
		}
		if len(product.Images) > 0 {
			line.Image = product.Images[0].Src
		}
	}

	return s.carts.Add(ctx, token, line, qty)
}

func (s *StorefrontService) UpdateCartQuantity(ctx context.Context, token string, itemID int64, qty int) (*domain.Cart, error) {
	return s.carts.UpdateQuantity(ctx, token, itemID, qty)
}

func (s *StorefrontService) RemoveFromCart(ctx context.Context, token string, itemID int64) (*domain.Cart, error) {
	return s.carts.Remove(ctx, token, itemID)
}

func (s *StorefrontService) ClearCart(ctx context.Context, token string) error {
	return s.carts.Clear(ctx, token)
}
