package availability

import (
	"context"
	"fmt"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListForProduct(ctx context.Context, productID int64) ([]Availability, error) {
	return s.repo.ListForProduct(ctx, productID)
}

func (s *Service) Create(ctx context.Context, productID, locationID int64, quantity int) (Availability, error) {
	if productID <= 0 || locationID <= 0 {
		return Availability{}, fmt.Errorf("%w: product and location are required", httpx.ErrValidation)
	}
	if quantity < 0 {
		return Availability{}, fmt.Errorf("%w: quantity must not be negative", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, Availability{ProductID: productID, LocationID: locationID, Quantity: quantity})
}

func (s *Service) SetQuantity(ctx context.Context, id int64, quantity int) (Availability, error) {
	if quantity < 0 {
		return Availability{}, fmt.Errorf("%w: quantity must not be negative", httpx.ErrValidation)
	}
	return s.repo.SetQuantity(ctx, id, quantity)
}

// Upsert is the sync path: one row per (product, location), last write wins.
func (s *Service) Upsert(ctx context.Context, productID, locationID int64, quantity int) (Availability, error) {
	if quantity < 0 {
		quantity = 0
	}
	return s.repo.Upsert(ctx, productID, locationID, quantity)
}
