package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline-co/threadline-backend/api/middleware"
	"github.com/threadline-co/threadline-backend/api/responses"
	"github.com/threadline-co/threadline-backend/api/validators"
	cartsvc "github.com/threadline-co/threadline-backend/internal/cart"
	"github.com/threadline-co/threadline-backend/internal/catalog"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
	"github.com/threadline-co/threadline-backend/pkg/logger"
)

type addCartItemPayload struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

// Quantity is a pointer so an explicit zero survives validation; zero
// and below remove the line.
type updateCartItemPayload struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartGet returns the client's cart.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Get(ctx, middleware.ClientIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartAddItem adds a catalog product to the cart, aggregating duplicate
// lines by product id.
func CartAddItem(svc cartsvc.Service, provider *catalog.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil || provider == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, ok := provider.ProductByID(payload.ProductID)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		cart, err := svc.AddItem(ctx, middleware.ClientIDFromContext(ctx), product, cartsvc.AddItemInput{
			Quantity: payload.Quantity,
			Size:     payload.Size,
			Color:    payload.Color,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, cart)
	}
}

// CartUpdateItem sets a line's quantity; zero or less removes the line.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload updateCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID := chi.URLParam(r, "productId")
		cart, err := svc.UpdateQuantity(ctx, middleware.ClientIDFromContext(ctx), productID, *payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartRemoveItem drops a line from the cart.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		cart, err := svc.RemoveItem(ctx, middleware.ClientIDFromContext(ctx), productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartClear empties the cart but leaves the drawer state alone.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Clear(ctx, middleware.ClientIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartToggle flips the cart drawer open or closed.
func CartToggle(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Toggle(ctx, middleware.ClientIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}
