package controllers

import (
	"net/http"

	"github.com/threadline-co/threadline-backend/api/middleware"
	"github.com/threadline-co/threadline-backend/api/responses"
	"github.com/threadline-co/threadline-backend/api/validators"
	checkoutsvc "github.com/threadline-co/threadline-backend/internal/checkout"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
	"github.com/threadline-co/threadline-backend/pkg/logger"
)

// CheckoutPrefill returns session-derived defaults for the contact form.
func CheckoutPrefill(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		prefill, err := svc.Prefill(ctx, middleware.ClientIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, prefill)
	}
}

// CheckoutQuote computes the order summary for the current cart.
func CheckoutQuote(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		quote, err := svc.Quote(ctx, middleware.ClientIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// CheckoutPlaceOrder validates the contact and payment forms, places the
// mock order, and clears the cart.
func CheckoutPlaceOrder(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutsvc.PlaceOrderInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(ctx, middleware.ClientIDFromContext(ctx), payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
