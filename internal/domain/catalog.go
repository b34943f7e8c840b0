package domain

type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	DayRate     float64 `json:"day_rate"`
	Description string  `json:"description,omitempty"`
	Specs       string  `json:"specs,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Stock       int     `json:"stock"`
}

type Package struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Target      string        `json:"target,omitempty"`
	BasePrice   float64       `json:"base_price"`
	Description string        `json:"description,omitempty"`
	Items       []PackageItem `json:"items,omitempty"`
}

// PackageItem links a Package to a Product with a quantity. Product is
// populated on package reads where the referenced products are resolved.
type PackageItem struct {
	ID        uint     `json:"id"`
	PackageID uint     `json:"package_id"`
	ProductID uint     `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}
