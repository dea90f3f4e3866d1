// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware is the development-time replacement for the JWT
// middleware: it trusts the X-User-ID header and skips token verification.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			log.Println("[DEV AUTH] Failed: X-User-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Cabeçalho X-User-ID ausente.", "", model.ErrForbidden)
			webutil.HandleError(w, appErr)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			log.Printf("[DEV AUTH] Failed: Invalid X-User-ID format: %s", userIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Formato do X-User-ID inválido.", "", model.ErrForbidden)
			webutil.HandleError(w, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
