package response

import "github.com/nlsproduction/nls-api/internal/domain"

// ProductSummary is the public listing shape: display fields and
// pricing only.
type ProductSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	DayRate  float64 `json:"day_rate"`
}

type PackageSummary struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	BasePrice float64 `json:"base_price"`
}

func NewProductSummaries(products []domain.Product) []ProductSummary {
	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			DayRate:  p.DayRate,
		})
	}

	return summaries
}

func NewPackageSummaries(packages []domain.Package) []PackageSummary {
	summaries := make([]PackageSummary, 0, len(packages))
	for _, p := range packages {
		summaries = append(summaries, PackageSummary{
			ID:        p.ID,
			Title:     p.Title,
			BasePrice: p.BasePrice,
		})
	}

	return summaries
}
