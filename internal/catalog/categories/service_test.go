package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

type memoryCategoryRepo struct {
	items  []Category
	nextID int64
}

func (r *memoryCategoryRepo) ListActive(ctx context.Context) ([]Category, error) {
	var out []Category
	for _, c := range r.items {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCategoryRepo) GetBySlug(ctx context.Context, slug string) (Category, error) {
	for _, c := range r.items {
		if c.Slug == slug && c.IsActive {
			return c, nil
		}
	}
	return Category{}, shared.ErrNotFound
}

func (r *memoryCategoryRepo) Create(ctx context.Context, category Category) (Category, error) {
	for _, c := range r.items {
		if c.Slug == category.Slug {
			return Category{}, httpx.ErrDuplicate
		}
	}
	r.nextID++
	category.ID = r.nextID
	r.items = append(r.items, category)
	return category, nil
}

func TestCreateGeneratesSlug(t *testing.T) {
	svc := NewService(&memoryCategoryRepo{})

	created, err := svc.Create(context.Background(), Category{Name: "Pod Systems"})
	require.NoError(t, err)
	require.Equal(t, "pod-systems", created.Slug)
	require.True(t, created.IsActive)
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(&memoryCategoryRepo{})

	_, err := svc.Create(context.Background(), Category{Name: "   "})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	svc := NewService(&memoryCategoryRepo{})

	_, err := svc.Create(context.Background(), Category{Name: "Disposables", Slug: "disposable"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), Category{Name: "Disposables Two", Slug: "disposable"})
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestGetBySlugHidesInactive(t *testing.T) {
	repo := &memoryCategoryRepo{items: []Category{
		{ID: 1, Name: "Retired", Slug: "retired", IsActive: false},
	}}
	svc := NewService(repo)

	_, err := svc.GetBySlug(context.Background(), "retired")
	require.ErrorIs(t, err, shared.ErrNotFound)
}
