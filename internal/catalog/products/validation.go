package products

import (
	"fmt"
	"strings"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

func (s *Service) validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	if p.Slug == "" {
		return fmt.Errorf("%w: product slug is required", httpx.ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", httpx.ErrValidation)
	}
	return nil
}
