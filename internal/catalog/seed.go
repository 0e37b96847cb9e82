package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/threadline-co/threadline-backend/pkg/enums"
)

// Static mock catalog. The storefront runs entirely off this data; swap
// in a real product feed by constructing the provider with other slices.

func strPtr(s string) *string { return &s }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SeedBrands returns the mock brand roster.
func SeedBrands() []Brand {
	return []Brand{
		{
			ID:          "brand-urban-thread",
			Slug:        "urban-thread",
			Name:        "Urban Thread",
			Logo:        "/assets/brands/urban-thread.png",
			Description: strPtr("Modern urban fashion for the contemporary lifestyle."),
		},
		{
			ID:          "brand-velvet-pine",
			Slug:        "velvet-pine",
			Name:        "Velvet & Pine",
			Logo:        "/assets/brands/velvet-pine.png",
			Description: strPtr("Timeless pieces that never go out of style."),
		},
		{
			ID:          "brand-northside",
			Slug:        "northside-supply",
			Name:        "Northside Supply",
			Logo:        "/assets/brands/northside.png",
			Description: strPtr("Rugged everyday staples built to last."),
		},
		{
			ID:          "brand-mediwear",
			Slug:        "mediwear-pro",
			Name:        "MediWear Pro",
			Logo:        "/assets/brands/mediwear.png",
			Description: strPtr("Performance medical uniforms trusted on long shifts."),
			Offer:       strPtr("Hospital teams get 15% off orders of ten sets or more."),
		},
		{
			ID:          "brand-cedar-scrubs",
			Slug:        "cedar-scrubs",
			Name:        "Cedar Scrubs",
			Logo:        "/assets/brands/cedar-scrubs.png",
			Description: strPtr("Soft, sustainable scrubs in clinic-ready colors."),
		},
		{
			ID:          "brand-solace",
			Slug:        "solace-active",
			Name:        "Solace Active",
			Logo:        "/assets/brands/solace.png",
			Description: strPtr("High-performance activewear for work and recovery."),
		},
	}
}

// SeedCategories returns the mock category tree. Scrub tops and pants
// nest under the scrubs parent.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat-tops", Slug: "tops", Name: "Tops", Scope: enums.CategoryScopeBoth},
		{ID: "cat-pants", Slug: "pants", Name: "Pants", Scope: enums.CategoryScopeBoth},
		{ID: "cat-dresses", Slug: "dresses", Name: "Dresses", Scope: enums.CategoryScopeWomen},
		{ID: "cat-outerwear", Slug: "outerwear", Name: "Outerwear", Scope: enums.CategoryScopeBoth},
		{ID: "cat-footwear", Slug: "footwear", Name: "Footwear", Scope: enums.CategoryScopeBoth},
		{ID: "cat-scrubs", Slug: "scrubs", Name: "Scrubs", Scope: enums.CategoryScopeBoth},
		{ID: "cat-scrub-tops", Slug: "scrub-tops", Name: "Scrub Tops", Scope: enums.CategoryScopeBoth, ParentID: strPtr("cat-scrubs")},
		{ID: "cat-scrub-pants", Slug: "scrub-pants", Name: "Scrub Pants", Scope: enums.CategoryScopeBoth, ParentID: strPtr("cat-scrubs")},
	}
}

// SeedProducts returns the mock product list in merchandising order,
// which doubles as the "newest" sort order.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "prod-001",
			Name:        "Classic White Tee",
			Description: "Premium cotton t-shirt with a comfortable fit. Perfect for casual wear.",
			Price:       price("29.99"),
			Image:       "/assets/products/classic-white-tee.jpg",
			BrandID:     "brand-urban-thread",
			CategoryID:  "cat-tops",
			Gender:      enums.GenderUnisex,
			InStock:     true,
			Colors:      []string{"White", "Heather Grey", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			IsFeatured:  true,
			Tags:        []string{"cotton", "basics"},
		},
		{
			ID:            "prod-002",
			Name:          "Denim Trucker Jacket",
			Description:   "Classic denim jacket with a modern twist. Durable and stylish.",
			Price:         price("89.99"),
			OriginalPrice: pricePtr("119.99"),
			Image:         "/assets/products/denim-trucker.jpg",
			BrandID:       "brand-northside",
			CategoryID:    "cat-outerwear",
			Gender:        enums.GenderMen,
			InStock:       true,
			Colors:        []string{"Indigo", "Washed Black"},
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			IsOnSale:      true,
			IsFeatured:    true,
			Tags:          []string{"denim"},
		},
		{
			ID:          "prod-003",
			Name:        "Everyday Runner",
			Description: "High-performance running shoes with responsive cushioning.",
			Price:       price("129.99"),
			Image:       "/assets/products/everyday-runner.jpg",
			BrandID:     "brand-solace",
			CategoryID:  "cat-footwear",
			Gender:      enums.GenderUnisex,
			InStock:     true,
			Colors:      []string{"Cloud White", "Graphite"},
			Sizes:       []string{"6", "7", "8", "9", "10", "11", "12"},
			IsFeatured:  true,
		},
		{
			ID:          "prod-004",
			Name:        "Merino Crew Sweater",
			Description: "Cozy merino sweater for colder weather, soft enough to layer.",
			Price:       price("79.99"),
			Image:       "/assets/products/merino-crew.jpg",
			BrandID:     "brand-velvet-pine",
			CategoryID:  "cat-tops",
			Gender:      enums.GenderWomen,
			InStock:     true,
			Colors:      []string{"Oat", "Forest", "Navy"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Tags:        []string{"wool", "winter"},
		},
		{
			ID:            "prod-005",
			Name:          "Core Scrub Top",
			Description:   "Four-way stretch scrub top with three utility pockets.",
			Price:         price("34.99"),
			OriginalPrice: pricePtr("42.99"),
			Image:         "/assets/products/core-scrub-top.jpg",
			BrandID:       "brand-mediwear",
			CategoryID:    "cat-scrub-tops",
			SubCategory:   strPtr("V-Neck"),
			Gender:        enums.GenderWomen,
			InStock:       true,
			Colors:        []string{"Ceil Blue", "Wine", "Navy", "Black"},
			Sizes:         []string{"XS", "S", "M", "L", "XL", "2XL"},
			IsOnSale:      true,
			IsFeatured:    true,
			Tags:          []string{"scrubs", "stretch"},
		},
		{
			ID:          "prod-006",
			Name:        "Core Scrub Pant",
			Description: "Jogger-style scrub pant with a yoga waistband and six pockets.",
			Price:       price("39.99"),
			Image:       "/assets/products/core-scrub-pant.jpg",
			BrandID:     "brand-mediwear",
			CategoryID:  "cat-scrub-pants",
			SubCategory: strPtr("Jogger"),
			Gender:      enums.GenderWomen,
			InStock:     true,
			Colors:      []string{"Ceil Blue", "Wine", "Navy", "Black"},
			Sizes:       []string{"XS", "S", "M", "L", "XL", "2XL"},
			Tags:        []string{"scrubs"},
		},
		{
			ID:          "prod-007",
			Name:        "Fir Classic Scrub Top",
			Description: "Sustainably milled scrub top with a relaxed unisex cut.",
			Price:       price("32.99"),
			Image:       "/assets/products/fir-scrub-top.jpg",
			BrandID:     "brand-cedar-scrubs",
			CategoryID:  "cat-scrub-tops",
			Gender:      enums.GenderUnisex,
			InStock:     true,
			Colors:      []string{"Sage", "Charcoal", "Ceil Blue"},
			Sizes:       []string{"XS", "S", "M", "L", "XL", "2XL", "3XL"},
			Tags:        []string{"scrubs", "sustainable"},
		},
		{
			ID:          "prod-008",
			Name:        "Fir Classic Scrub Pant",
			Description: "Straight-leg scrub pant in recycled performance twill.",
			Price:       price("36.99"),
			Image:       "/assets/products/fir-scrub-pant.jpg",
			BrandID:     "brand-cedar-scrubs",
			CategoryID:  "cat-scrub-pants",
			Gender:      enums.GenderMen,
			InStock:     false,
			Colors:      []string{"Sage", "Charcoal"},
			Sizes:       []string{"S", "M", "L", "XL", "2XL"},
			Tags:        []string{"scrubs", "sustainable"},
		},
		{
			ID:            "prod-009",
			Name:          "Longline Lab Coat",
			Description:   "Tailored lab coat with reinforced seams and deep pockets.",
			Price:         price("64.99"),
			OriginalPrice: pricePtr("79.99"),
			Image:         "/assets/products/longline-lab-coat.jpg",
			BrandID:       "brand-mediwear",
			CategoryID:    "cat-outerwear",
			SubCategory:   strPtr("Lab Coats"),
			Gender:        enums.GenderUnisex,
			InStock:       true,
			Sizes:         []string{"XS", "S", "M", "L", "XL", "2XL"},
			IsOnSale:      true,
			Tags:          []string{"clinical"},
		},
		{
			ID:          "prod-010",
			Name:        "Skinny Stretch Jean",
			Description: "Premium denim with a modern skinny fit and comfortable stretch.",
			Price:       price("59.99"),
			Image:       "/assets/products/skinny-stretch-jean.jpg",
			BrandID:     "brand-urban-thread",
			CategoryID:  "cat-pants",
			Gender:      enums.GenderWomen,
			InStock:     true,
			Colors:      []string{"Mid Wash", "Black"},
			Sizes:       []string{"24", "25", "26", "27", "28", "29", "30"},
			Tags:        []string{"denim"},
		},
		{
			ID:          "prod-011",
			Name:        "Organic Cotton Wrap Dress",
			Description: "100% organic cotton dress. Comfortable, stylish, and sustainable.",
			Price:       price("94.99"),
			Image:       "/assets/products/organic-wrap-dress.jpg",
			BrandID:     "brand-velvet-pine",
			CategoryID:  "cat-dresses",
			Gender:      enums.GenderWomen,
			InStock:     true,
			Colors:      []string{"Terracotta", "Black"},
			Sizes:       []string{"XS", "S", "M", "L"},
			IsFeatured:  true,
			Tags:        []string{"organic"},
		},
		{
			ID:            "prod-012",
			Name:          "Sport Tank",
			Description:   "Lightweight, breathable tank for workouts and active recovery.",
			Price:         price("24.99"),
			OriginalPrice: pricePtr("34.99"),
			Image:         "/assets/products/sport-tank.jpg",
			BrandID:       "brand-solace",
			CategoryID:    "cat-tops",
			Gender:        enums.GenderMen,
			InStock:       false,
			Colors:        []string{"Steel", "Olive"},
			Sizes:         []string{"S", "M", "L", "XL"},
			IsOnSale:      true,
			Tags:          []string{"athletic"},
		},
		{
			ID:          "prod-013",
			Name:        "Vintage Bomber Jacket",
			Description: "Vintage-inspired bomber with modern details and premium materials.",
			Price:       price("119.99"),
			Image:       "/assets/products/vintage-bomber.jpg",
			BrandID:     "brand-urban-thread",
			CategoryID:  "cat-outerwear",
			Gender:      enums.GenderUnisex,
			InStock:     true,
			Colors:      []string{"Army Green", "Black"},
			Sizes:       []string{"S", "M", "L", "XL"},
			IsFeatured:  true,
		},
		{
			ID:          "prod-014",
			Name:        "Chore Canvas Pant",
			Description: "Double-knee canvas work pant with a straight leg.",
			Price:       price("74.99"),
			Image:       "/assets/products/chore-canvas-pant.jpg",
			BrandID:     "brand-northside",
			CategoryID:  "cat-pants",
			Gender:      enums.GenderMen,
			InStock:     true,
			Colors:      []string{"Duck Brown", "Black"},
			Sizes:       []string{"30", "32", "34", "36", "38"},
			Tags:        []string{"workwear"},
		},
		{
			ID:            "prod-015",
			Name:          "Leather Court Sneaker",
			Description:   "Premium leather sneakers with classic styling and modern comfort.",
			Price:         price("149.99"),
			OriginalPrice: pricePtr("189.99"),
			Image:         "/assets/products/leather-court.jpg",
			BrandID:       "brand-velvet-pine",
			CategoryID:    "cat-footwear",
			Gender:        enums.GenderUnisex,
			InStock:       true,
			Colors:        []string{"White", "Bone"},
			Sizes:         []string{"6", "7", "8", "9", "10", "11", "12"},
			IsOnSale:      true,
		},
		{
			ID:          "prod-016",
			Name:        "Clog Shift Shoe",
			Description: "Slip-resistant clog rated for twelve-hour shifts.",
			Price:       price("54.99"),
			Image:       "/assets/products/clog-shift-shoe.jpg",
			BrandID:     "brand-mediwear",
			CategoryID:  "cat-footwear",
			Gender:      enums.GenderUnisex,
			InStock:     true,
			Colors:      []string{"White", "Navy", "Black"},
			Sizes:       []string{"5", "6", "7", "8", "9", "10", "11"},
			Tags:        []string{"clinical", "slip-resistant"},
		},
		{
			ID:          "prod-017",
			Name:        "Recovery Hoodie",
			Description: "Made from recycled fibers. Comfortable and environmentally responsible.",
			Price:       price("69.99"),
			Image:       "/assets/products/recovery-hoodie.jpg",
			BrandID:     "brand-solace",
			CategoryID:  "cat-tops",
			Gender:      enums.GenderUnisex,
			InStock:     true,
			Colors:      []string{"Slate", "Moss"},
			Sizes:       []string{"S", "M", "L", "XL", "2XL"},
			Tags:        []string{"recycled"},
		},
		{
			ID:          "prod-018",
			Name:        "Underscrub Long Sleeve",
			Description: "Moisture-wicking layering tee cut to sit flat under scrubs.",
			Price:       price("26.99"),
			Image:       "/assets/products/underscrub-tee.jpg",
			BrandID:     "brand-cedar-scrubs",
			CategoryID:  "cat-tops",
			SubCategory: strPtr("Underscrubs"),
			Gender:      enums.GenderMen,
			InStock:     true,
			Colors:      []string{"White", "Charcoal"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Tags:        []string{"scrubs", "layering"},
		},
	}
}
