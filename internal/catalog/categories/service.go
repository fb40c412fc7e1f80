package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/vapemart/vapemart/internal/catalog/shared"
	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) Create(ctx context.Context, category Category) (Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return Category{}, fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	if category.Slug == "" {
		category.Slug = shared.Slugify(category.Name)
	}
	category.IsActive = true
	return s.repo.Create(ctx, category)
}
