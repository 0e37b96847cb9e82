package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/threadline-co/threadline-backend/pkg/enums"
)

func filterTestProvider(t *testing.T) *Provider {
	t.Helper()

	brands := []Brand{
		{ID: "b-arc", Slug: "arc", Name: "Arc Apparel", Logo: "l"},
		{ID: "b-zen", Slug: "zen", Name: "Zen Basics", Logo: "l"},
	}
	categories := []Category{
		{ID: "c-tops", Slug: "tops", Name: "Tops", Scope: enums.CategoryScopeBoth},
		{ID: "c-pants", Slug: "pants", Name: "Pants", Scope: enums.CategoryScopeBoth},
	}
	products := []Product{
		{ID: "p1", Name: "Delta Top", Description: "d", Price: decimal.RequireFromString("30"), BrandID: "b-arc", CategoryID: "c-tops", Gender: enums.GenderWomen, InStock: true},
		{ID: "p2", Name: "Alpha Top", Description: "d", Price: decimal.RequireFromString("10"), BrandID: "b-zen", CategoryID: "c-tops", Gender: enums.GenderUnisex, InStock: true, IsOnSale: true},
		{ID: "p3", Name: "Charlie Pant", Description: "d", Price: decimal.RequireFromString("10"), BrandID: "b-arc", CategoryID: "c-pants", Gender: enums.GenderMen, InStock: true},
		{ID: "p4", Name: "Bravo Top", Description: "d", Price: decimal.RequireFromString("20"), BrandID: "b-zen", CategoryID: "c-tops", Gender: enums.GenderMen, InStock: true},
	}

	p, err := NewProvider(products, brands, categories)
	if err != nil {
		t.Fatalf("build provider: %v", err)
	}
	return p
}

func productIDs(products []Product) []string {
	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}
	return ids
}

func assertOrder(t *testing.T, got []Product, want ...string) {
	t.Helper()
	ids := productIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestListProductsNoCriteriaKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	assertOrder(t, p.ListProducts(ListProductsInput{}), "p1", "p2", "p3", "p4")
}

func TestListProductsFiltersAndCompose(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	women := enums.GenderWomen

	// Category AND gender: unisex products always pass a gender filter.
	got := p.ListProducts(ListProductsInput{CategoryID: "c-tops", Gender: &women})
	assertOrder(t, got, "p1", "p2")
}

func TestListProductsGenderFilterAdmitsUnisex(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	men := enums.GenderMen

	got := p.ListProducts(ListProductsInput{Gender: &men})
	assertOrder(t, got, "p2", "p3", "p4")
}

func TestListProductsSaleOnly(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	got := p.ListProducts(ListProductsInput{OnSale: true})
	assertOrder(t, got, "p2")
}

func TestListProductsBrandFilter(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	got := p.ListProducts(ListProductsInput{BrandID: "b-arc"})
	assertOrder(t, got, "p1", "p3")
}

func TestListProductsSearchThenFilter(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	got := p.ListProducts(ListProductsInput{Query: "top", BrandID: "b-zen"})
	assertOrder(t, got, "p2", "p4")
}

func TestSortPriceLowIsStable(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)

	// Prices are [30, 10, 10, 20]; both 10s keep their relative order.
	got := p.ListProducts(ListProductsInput{Sort: enums.SortPriceLow})
	assertOrder(t, got, "p2", "p3", "p4", "p1")
}

func TestSortPriceHigh(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	got := p.ListProducts(ListProductsInput{Sort: enums.SortPriceHigh})
	assertOrder(t, got, "p1", "p4", "p2", "p3")
}

func TestSortByName(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	got := p.ListProducts(ListProductsInput{Sort: enums.SortName})
	assertOrder(t, got, "p2", "p4", "p3", "p1")
}

func TestSortByBrandNameIsStable(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)

	// Arc Apparel before Zen Basics; within a brand the catalog order
	// survives.
	got := p.ListProducts(ListProductsInput{Sort: enums.SortBrand})
	assertOrder(t, got, "p1", "p3", "p2", "p4")
}

func TestSortUnknownKeyFallsBackToCatalogOrder(t *testing.T) {
	t.Parallel()

	p := filterTestProvider(t)
	got := p.ListProducts(ListProductsInput{Sort: enums.SortKey("bogus")})
	assertOrder(t, got, "p1", "p2", "p3", "p4")
}
