package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 10, p.PageSize)
	require.Equal(t, 25, p.TotalCount)
	require.Equal(t, 3, p.TotalPages)
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(0, 0, 5)
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultPageSize, p.PageSize)
	require.Equal(t, 1, p.TotalPages)
}

func TestNewPaginationEmptySet(t *testing.T) {
	p := NewPagination(1, 12, 0)
	require.Equal(t, 0, p.TotalCount)
	require.Equal(t, 0, p.TotalPages)
}

func TestNewPaginationExactBoundary(t *testing.T) {
	p := NewPagination(1, 12, 24)
	require.Equal(t, 2, p.TotalPages)
}
