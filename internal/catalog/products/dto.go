package products

// ProductForm carries fields for creating a product.
type ProductForm struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Slug            string            `json:"slug"`
	Image           string            `json:"image"`
	Price           int64             `json:"price"`
	CategoryID      *int64            `json:"categoryId"`
	BrandID         *int64            `json:"brandId"`
	BatteryCapacity string            `json:"batteryCapacity"`
	LiquidVolume    string            `json:"liquidVolume"`
	Power           string            `json:"power"`
	Featured        bool              `json:"featured"`
	IsNew           bool              `json:"isNew"`
	Specifications  map[string]string `json:"specifications"`
	Flavors         []string          `json:"flavors"`
}

// ProductPatch carries partial update fields; nil means "leave unchanged".
type ProductPatch struct {
	Name            *string            `json:"name"`
	Description     *string            `json:"description"`
	Slug            *string            `json:"slug"`
	Image           *string            `json:"image"`
	Price           *int64             `json:"price"`
	CategoryID      *int64             `json:"categoryId"`
	BrandID         *int64             `json:"brandId"`
	BatteryCapacity *string            `json:"batteryCapacity"`
	LiquidVolume    *string            `json:"liquidVolume"`
	Power           *string            `json:"power"`
	Featured        *bool              `json:"featured"`
	IsNew           *bool              `json:"isNew"`
	IsActive        *bool              `json:"isActive"`
	Specifications  *map[string]string `json:"specifications"`
	Flavors         *[]string          `json:"flavors"`
}
