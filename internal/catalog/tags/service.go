package tags

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

func (s *Service) List(ctx context.Context) ([]Tag, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListForProduct(ctx context.Context, productID int64) ([]Tag, error) {
	return s.repo.ListForProduct(ctx, productID)
}

func (s *Service) Create(ctx context.Context, tag Tag) (Tag, error) {
	if strings.TrimSpace(tag.Name) == "" {
		return Tag{}, fmt.Errorf("%w: tag name is required", httpx.ErrValidation)
	}
	if tag.Color == "" {
		tag.Color = DefaultColor
	}
	return s.repo.Create(ctx, tag)
}

func (s *Service) Attach(ctx context.Context, productID, tagID int64) error {
	return s.repo.Attach(ctx, productID, tagID)
}

func (s *Service) Detach(ctx context.Context, productID, tagID int64) error {
	return s.repo.Detach(ctx, productID, tagID)
}
