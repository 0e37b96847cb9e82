package controllers

import (
	"net/http"

	"github.com/threadline-co/threadline-backend/api/middleware"
	"github.com/threadline-co/threadline-backend/api/responses"
	"github.com/threadline-co/threadline-backend/api/validators"
	sessionsvc "github.com/threadline-co/threadline-backend/internal/session"
	"github.com/threadline-co/threadline-backend/pkg/config"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
	"github.com/threadline-co/threadline-backend/pkg/logger"
)

type loginPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	// Accepted for shape compatibility with the login form; never checked.
	Password string `json:"password"`
}

// AuthLogin signs any caller in. There is no credential check; the
// password field is accepted and discarded.
func AuthLogin(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload loginPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		session, err := svc.Login(ctx, middleware.ClientIDFromContext(ctx), sessionsvc.Identity{
			Name:  validators.SanitizeString(payload.Name, 100),
			Email: validators.SanitizeString(payload.Email, 200),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

// AuthDemoLogin signs in with the configured demo identity.
func AuthDemoLogin(svc sessionsvc.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		session, err := svc.Login(ctx, middleware.ClientIDFromContext(ctx), sessionsvc.Identity{
			ID:    cfg.DemoUser.ID,
			Name:  cfg.DemoUser.Name,
			Email: cfg.DemoUser.Email,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

// AuthLogout clears the session. The cart is untouched.
func AuthLogout(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		session, err := svc.Logout(ctx, middleware.ClientIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

// AuthSession reports the current session state.
func AuthSession(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		session, err := svc.Get(ctx, middleware.ClientIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}
