package catalog

import (
	"sort"

	"github.com/threadline-co/threadline-backend/pkg/enums"
)

// ListProductsInput describes the supported filter knobs for the browse
// surface. Filters are optional and AND-combined; the sort runs after
// every filter.
type ListProductsInput struct {
	Query      string        `json:"q,omitempty"`
	BrandID    string        `json:"brand_id,omitempty"`
	CategoryID string        `json:"category_id,omitempty"`
	Gender     *enums.Gender `json:"gender,omitempty"`
	OnSale     bool          `json:"on_sale,omitempty"`
	Sort       enums.SortKey `json:"sort,omitempty"`
}

// ListProducts runs the filter/sort pipeline over the full catalog and
// returns a fresh, ordered slice. Unisex products pass any gender
// filter. Equal sort keys keep their prior relative order.
func (p *Provider) ListProducts(input ListProductsInput) []Product {
	out := make([]Product, 0, len(p.products))

	for _, product := range p.products {
		if !p.matchesFilters(product, input) {
			continue
		}
		out = append(out, product)
	}

	p.sortProducts(out, input.Sort)
	return out
}

func (p *Provider) matchesFilters(product Product, input ListProductsInput) bool {
	if q := normalizeQuery(input.Query); q != "" && !p.matchesQuery(product, q) {
		return false
	}
	if input.BrandID != "" && product.BrandID != input.BrandID {
		return false
	}
	if input.CategoryID != "" && product.CategoryID != input.CategoryID {
		return false
	}
	if input.Gender != nil && product.Gender != *input.Gender && product.Gender != enums.GenderUnisex {
		return false
	}
	if input.OnSale && !product.IsOnSale {
		return false
	}
	return true
}

func (p *Provider) sortProducts(products []Product, key enums.SortKey) {
	switch key {
	case enums.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case enums.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case enums.SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case enums.SortBrand:
		sort.SliceStable(products, func(i, j int) bool {
			return p.brandName(products[i].BrandID) < p.brandName(products[j].BrandID)
		})
	default:
		// newest keeps the order filtering produced.
	}
}

func (p *Provider) brandName(brandID string) string {
	if brand, ok := p.BrandByID(brandID); ok {
		return brand.Name
	}
	return ""
}
