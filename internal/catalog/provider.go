package catalog

import (
	"fmt"
	"strings"

	"github.com/threadline-co/threadline-backend/pkg/enums"
)

// Provider serves the immutable catalog: lookups, search, and the
// filter/sort pipeline. All data is loaded once at construction and
// never mutated, so reads need no locking.
type Provider struct {
	products   []Product
	brands     []Brand
	categories []Category

	productsByID     map[string]int
	brandsByID       map[string]int
	brandsBySlug     map[string]int
	categoriesByID   map[string]int
	categoriesBySlug map[string]int
}

// NewProvider indexes the given reference data, rejecting records that
// would leave dangling foreign keys or duplicate identities.
func NewProvider(products []Product, brands []Brand, categories []Category) (*Provider, error) {
	p := &Provider{
		products:         products,
		brands:           brands,
		categories:       categories,
		productsByID:     make(map[string]int, len(products)),
		brandsByID:       make(map[string]int, len(brands)),
		brandsBySlug:     make(map[string]int, len(brands)),
		categoriesByID:   make(map[string]int, len(categories)),
		categoriesBySlug: make(map[string]int, len(categories)),
	}

	for i, brand := range brands {
		if brand.ID == "" || brand.Slug == "" {
			return nil, fmt.Errorf("brand %d: id and slug are required", i)
		}
		if _, dup := p.brandsByID[brand.ID]; dup {
			return nil, fmt.Errorf("duplicate brand id %q", brand.ID)
		}
		if _, dup := p.brandsBySlug[brand.Slug]; dup {
			return nil, fmt.Errorf("duplicate brand slug %q", brand.Slug)
		}
		p.brandsByID[brand.ID] = i
		p.brandsBySlug[brand.Slug] = i
	}

	for i, category := range categories {
		if category.ID == "" || category.Slug == "" {
			return nil, fmt.Errorf("category %d: id and slug are required", i)
		}
		if _, dup := p.categoriesByID[category.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", category.ID)
		}
		if _, dup := p.categoriesBySlug[category.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", category.Slug)
		}
		p.categoriesByID[category.ID] = i
		p.categoriesBySlug[category.Slug] = i
	}

	for _, category := range categories {
		if category.ParentID == nil {
			continue
		}
		if _, ok := p.categoriesByID[*category.ParentID]; !ok {
			return nil, fmt.Errorf("category %q references unknown parent %q", category.ID, *category.ParentID)
		}
	}

	for i, product := range products {
		if product.ID == "" {
			return nil, fmt.Errorf("product %d: id is required", i)
		}
		if _, dup := p.productsByID[product.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", product.ID)
		}
		if product.Price.IsNegative() {
			return nil, fmt.Errorf("product %q: price must be non-negative", product.ID)
		}
		if product.OriginalPrice != nil && product.OriginalPrice.LessThan(product.Price) {
			return nil, fmt.Errorf("product %q: original price below current price", product.ID)
		}
		if _, ok := p.brandsByID[product.BrandID]; !ok {
			return nil, fmt.Errorf("product %q references unknown brand %q", product.ID, product.BrandID)
		}
		if _, ok := p.categoriesByID[product.CategoryID]; !ok {
			return nil, fmt.Errorf("product %q references unknown category %q", product.ID, product.CategoryID)
		}
		if !product.Gender.IsValid() {
			return nil, fmt.Errorf("product %q: invalid gender %q", product.ID, product.Gender)
		}
		p.productsByID[product.ID] = i
	}

	return p, nil
}

// NewSeededProvider builds a provider over the static mock catalog.
func NewSeededProvider() (*Provider, error) {
	return NewProvider(SeedProducts(), SeedBrands(), SeedCategories())
}

// Products returns the full catalog in merchandising order.
func (p *Provider) Products() []Product {
	out := make([]Product, len(p.products))
	copy(out, p.products)
	return out
}

// Brands returns every brand.
func (p *Provider) Brands() []Brand {
	out := make([]Brand, len(p.brands))
	copy(out, p.brands)
	return out
}

// Categories returns every category, optionally narrowed to those whose
// scope covers the given gender.
func (p *Provider) Categories(gender *enums.Gender) []Category {
	out := make([]Category, 0, len(p.categories))
	for _, category := range p.categories {
		if gender != nil && !category.Scope.Includes(*gender) {
			continue
		}
		out = append(out, category)
	}
	return out
}

// ProductByID looks up a product; the bool is false when absent.
func (p *Provider) ProductByID(id string) (Product, bool) {
	i, ok := p.productsByID[id]
	if !ok {
		return Product{}, false
	}
	return p.products[i], true
}

// BrandByID looks up a brand by its identity.
func (p *Provider) BrandByID(id string) (Brand, bool) {
	i, ok := p.brandsByID[id]
	if !ok {
		return Brand{}, false
	}
	return p.brands[i], true
}

// BrandBySlug looks up a brand by its URL slug.
func (p *Provider) BrandBySlug(slug string) (Brand, bool) {
	i, ok := p.brandsBySlug[slug]
	if !ok {
		return Brand{}, false
	}
	return p.brands[i], true
}

// CategoryByID looks up a category by its identity.
func (p *Provider) CategoryByID(id string) (Category, bool) {
	i, ok := p.categoriesByID[id]
	if !ok {
		return Category{}, false
	}
	return p.categories[i], true
}

// ProductsByBrand returns the brand's products in catalog order.
func (p *Provider) ProductsByBrand(brandID string) []Product {
	out := []Product{}
	for _, product := range p.products {
		if product.BrandID == brandID {
			out = append(out, product)
		}
	}
	return out
}

// ProductsByBrandSlug resolves the slug and returns the brand's
// products. An unknown slug yields an empty list, not an error.
func (p *Provider) ProductsByBrandSlug(slug string) []Product {
	brand, ok := p.BrandBySlug(slug)
	if !ok {
		return []Product{}
	}
	return p.ProductsByBrand(brand.ID)
}

// FeaturedProducts returns up to limit featured products in catalog order.
func (p *Provider) FeaturedProducts(limit int) []Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	out := []Product{}
	for _, product := range p.products {
		if !product.IsFeatured {
			continue
		}
		out = append(out, product)
		if len(out) == limit {
			break
		}
	}
	return out
}

// DefaultFeaturedLimit caps the storefront's featured rail.
const DefaultFeaturedLimit = 8

// SearchProducts returns products whose name, description, brand name,
// or category name contains the query, case-insensitively.
func (p *Provider) SearchProducts(query string) []Product {
	q := normalizeQuery(query)
	if q == "" {
		return p.Products()
	}
	out := []Product{}
	for _, product := range p.products {
		if p.matchesQuery(product, q) {
			out = append(out, product)
		}
	}
	return out
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (p *Provider) matchesQuery(product Product, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(product.Name), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Description), loweredQuery) {
		return true
	}
	if brand, ok := p.BrandByID(product.BrandID); ok {
		if strings.Contains(strings.ToLower(brand.Name), loweredQuery) {
			return true
		}
	}
	if category, ok := p.CategoryByID(product.CategoryID); ok {
		if strings.Contains(strings.ToLower(category.Name), loweredQuery) {
			return true
		}
	}
	return false
}
