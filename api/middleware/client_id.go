package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/threadline-co/threadline-backend/pkg/logger"
)

const clientIDHeader = "X-Client-Id"

// ClientID resolves the per-browser storage scope. Clients send the same
// header on every request; a request without one gets a fresh id minted
// and echoed back so the client can adopt it.
func ClientID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := r.Header.Get(clientIDHeader)
			if clientID == "" {
				clientID = uuid.NewString()
			}

			w.Header().Set(clientIDHeader, clientID)

			ctx := WithClientID(r.Context(), clientID)
			if logg != nil {
				ctx = logg.WithClientID(ctx, clientID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
