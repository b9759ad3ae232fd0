package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/catalog"
	"github.com/OmarHosamCodes/noocommerce/internal/domain"
	"github.com/OmarHosamCodes/noocommerce/internal/woo"
)

func (s *StorefrontService) ListProducts(ctx context.Context, params woo.ListProductsParams) ([]domain.Product, woo.Pagination, error) {
	return s.api.ListProducts(ctx, params)
}

func (s *StorefrontService) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	return s.api.GetProductBySlug(ctx, slug)
}

func (s *StorefrontService) ListVariations(ctx context.Context, productID int64) ([]domain.Variant, error) {
	return s.catalog.LoadVariants(ctx, productID)
}

func (s *StorefrontService) ListReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	return s.api.ListReviews(ctx, productID)
}

func (s *StorefrontService) CreateReview(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	if err := in.Validate(); err != nil {
		return domain.Review{}, err
	}
	return s.api.CreateReview(ctx, in)
}

// ResolveVariant matches the current selection against the product's variant
// catalog. ErrUnresolvedVariant means the selection is incomplete or
// impossible; price and image fall back to the parent product until the user
// completes it. An ambiguous catalog (two variants satisfying the same
// selection) keeps first-match behavior and is logged for follow-up.
func (s *StorefrontService) ResolveVariant(ctx context.Context, productID int64, sel catalog.Selection) (*domain.Variant, error) {
	variants, err := s.catalog.LoadVariants(ctx, productID)
	if err != nil {
		return nil, err
	}

	match, ambiguous := catalog.Resolve(variants, sel)
	if match == nil {
		return nil, domain.ErrUnresolvedVariant
	}
	if ambiguous {
		s.logger.Warn("Selection matched more than one variant, keeping first in catalog order",
			zap.Int64("product_id", productID),
			zap.Int64("variant_id", match.ID))
	}
	return match, nil
}
