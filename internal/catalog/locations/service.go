package locations

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

func (s *Service) List(ctx context.Context) ([]Location, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Create(ctx context.Context, location Location) (Location, error) {
	if strings.TrimSpace(location.Name) == "" {
		return Location{}, fmt.Errorf("%w: location name is required", httpx.ErrValidation)
	}
	if strings.TrimSpace(location.Address) == "" {
		return Location{}, fmt.Errorf("%w: location address is required", httpx.ErrValidation)
	}
	location.IsActive = true
	return s.repo.Create(ctx, location)
}
