package middleware

import (
	"net/http"

	"github.com/Vamsi-027/fabric-commerce-backend/pkg/logger"
	"github.com/google/uuid"
)

const sessionIDHeader = "X-Session-Id"

// Session resolves the shopper session id from the request header, minting
// one for first-time visitors. Cart and wishlist state is keyed by it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
