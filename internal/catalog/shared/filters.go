// Package shared holds types common to the catalog packages.
package shared

// ProductFilters narrows the public product listing.
type ProductFilters struct {
	CategorySlug string
	Featured     *bool
	Search       string
	Page         int
	PageSize     int
	BrandIDs     []int64
	LocationIDs  []int64
}

// ListFilters narrows the admin listings.
type ListFilters struct {
	Search   string
	IsActive *bool
	Page     int
	PageSize int
}
