package shared

import "math"

// DefaultPageSize is applied when a listing request does not specify one.
const DefaultPageSize = 12

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes pagination metadata.
func NewPagination(page, pageSize, total int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return Pagination{Page: page, PageSize: pageSize, TotalCount: total, TotalPages: totalPages}
}
