package brands

import (
	"context"
	"fmt"
	"strings"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Brand, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Create(ctx context.Context, brand Brand) (Brand, error) {
	if strings.TrimSpace(brand.Name) == "" {
		return Brand{}, fmt.Errorf("%w: brand name is required", httpx.ErrValidation)
	}
	brand.IsActive = true
	return s.repo.Create(ctx, brand)
}
