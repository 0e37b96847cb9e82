package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/threadline-co/threadline-backend/pkg/enums"
)

// Product is immutable reference data. The provider hands out copies;
// nothing in the core mutates a product after load.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Image         string           `json:"image"`
	Images        []string         `json:"images,omitempty"`
	BrandID       string           `json:"brand_id"`
	CategoryID    string           `json:"category_id"`
	SubCategory   *string          `json:"sub_category,omitempty"`
	Gender        enums.Gender     `json:"gender"`
	InStock       bool             `json:"in_stock"`
	Colors        []string         `json:"colors,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	IsOnSale      bool             `json:"is_on_sale,omitempty"`
	IsFeatured    bool             `json:"is_featured,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
}

// SalePercent derives the discount from the compare-at price, rounded to
// the nearest whole percent. Zero when there is no compare-at price.
func (p Product) SalePercent() int {
	if p.OriginalPrice == nil || p.OriginalPrice.IsZero() {
		return 0
	}
	discount := decimal.NewFromInt(1).Sub(p.Price.Div(*p.OriginalPrice))
	return int(discount.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// Brand is immutable reference data.
type Brand struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Logo        string  `json:"logo"`
	Description *string `json:"description,omitempty"`
	Offer       *string `json:"offer,omitempty"`
}

// Category is immutable reference data. Sub-categories reference their
// parent rather than owning children.
type Category struct {
	ID       string              `json:"id"`
	Slug     string              `json:"slug"`
	Name     string              `json:"name"`
	Scope    enums.CategoryScope `json:"scope"`
	ParentID *string             `json:"parent_id,omitempty"`
}
