package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/threadline-co/threadline-backend/api/responses"
	"github.com/threadline-co/threadline-backend/api/validators"
	"github.com/threadline-co/threadline-backend/internal/catalog"
	"github.com/threadline-co/threadline-backend/pkg/config"
	"github.com/threadline-co/threadline-backend/pkg/enums"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
	"github.com/threadline-co/threadline-backend/pkg/logger"
)

const maxQueryLen = 200

// CatalogProducts runs the filter/search/sort pipeline over the catalog.
func CatalogProducts(provider *catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		input := catalog.ListProductsInput{
			Query:      validators.SanitizeString(r.URL.Query().Get("q"), maxQueryLen),
			BrandID:    validators.SanitizeString(r.URL.Query().Get("brand_id"), maxQueryLen),
			CategoryID: validators.SanitizeString(r.URL.Query().Get("category_id"), maxQueryLen),
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("gender")); raw != "" {
			gender, err := enums.ParseGender(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gender"))
				return
			}
			input.Gender = &gender
		}

		onSale, err := validators.ParseQueryBool(r, "on_sale")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input.OnSale = onSale

		if raw := strings.TrimSpace(r.URL.Query().Get("sort")); raw != "" {
			sortKey, err := enums.ParseSortKey(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key"))
				return
			}
			input.Sort = sortKey
		}

		responses.WriteSuccess(w, map[string]any{"products": provider.ListProducts(input)})
	}
}

// CatalogProductByID returns a single product or NOT_FOUND.
func CatalogProductByID(provider *catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		product, ok := provider.ProductByID(productID)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// CatalogFeaturedProducts lists the featured set, capped at limit.
func CatalogFeaturedProducts(provider *catalog.Provider, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", cfg.Catalog.FeaturedLimit, 1, 100)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": provider.FeaturedProducts(limit)})
	}
}

// CatalogBrands lists every brand.
func CatalogBrands(provider *catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"brands": provider.Brands()})
	}
}

// CatalogBrandBySlug returns one brand page or NOT_FOUND.
func CatalogBrandBySlug(provider *catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		slug := chi.URLParam(r, "slug")
		brand, ok := provider.BrandBySlug(slug)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "brand not found"))
			return
		}

		responses.WriteSuccess(w, brand)
	}
}

// CatalogBrandProducts lists a brand's products. An unknown slug yields
// an empty list rather than an error.
func CatalogBrandProducts(provider *catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		slug := chi.URLParam(r, "slug")
		responses.WriteSuccess(w, map[string]any{"products": provider.ProductsByBrandSlug(slug)})
	}
}

// CatalogCategories lists categories, optionally scoped to a gender.
func CatalogCategories(provider *catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var gender *enums.Gender
		if raw := strings.TrimSpace(r.URL.Query().Get("gender")); raw != "" {
			parsed, err := enums.ParseGender(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gender"))
				return
			}
			gender = &parsed
		}

		responses.WriteSuccess(w, map[string]any{"categories": provider.Categories(gender)})
	}
}
