package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// Login authenticates against the platform's JWT endpoint and keeps a
// session snapshot in durable storage so account reads don't round-trip on
// every request.
func (s *StorefrontService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.api.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, &sess); err != nil {
		s.logger.Warn("Failed to persist session snapshot",
			zap.Int64("user_id", sess.UserID),
			zap.Error(err))
	}
	return &sess, nil
}

func (s *StorefrontService) Register(ctx context.Context, req domain.RegisterRequest) (domain.Customer, error) {
	if err := req.Validate(); err != nil {
		return domain.Customer{}, err
	}
	return s.api.CreateCustomer(ctx, req)
}

// ValidateSession checks the token with the upstream auth endpoint.
func (s *StorefrontService) ValidateSession(ctx context.Context, token string) error {
	return s.api.ValidateToken(ctx, token)
}

// CurrentUser resolves the session snapshot to the full platform customer.
func (s *StorefrontService) CurrentUser(ctx context.Context, token string) (*domain.Customer, error) {
	sess, err := s.sessions.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	customer, err := s.api.FindCustomerByEmail(ctx, sess.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		// A WordPress account without a customer profile yet.
		return &domain.Customer{ID: sess.UserID, Email: sess.Email, Username: sess.Username}, nil
	}
	return customer, nil
}

// UserOrders lists the session owner's orders from the platform.
func (s *StorefrontService) UserOrders(ctx context.Context, token string) ([]domain.OrderSummary, error) {
	customer, err := s.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.api.ListOrders(ctx, customer.ID)
}

// UserOrder fetches one order and checks it belongs to the session owner.
func (s *StorefrontService) UserOrder(ctx context.Context, token string, orderID int64) (domain.OrderSummary, error) {
	customer, err := s.CurrentUser(ctx, token)
	if err != nil {
		return domain.OrderSummary{}, err
	}

	order, err := s.api.GetOrder(ctx, orderID)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	if order.CustomerID != customer.ID {
		return domain.OrderSummary{}, domain.ErrOrderNotFound
	}
	return order, nil
}
