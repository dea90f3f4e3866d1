package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/RaczoOBY/bible-app/internal/config"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware verifies the bearer token issued by the external auth
// service and puts the user id (the token subject) into the context. Account
// management itself lives outside this service; only verification happens
// here.
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Cabeçalho Authorization é obrigatório.", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Formato do cabeçalho Authorization inválido.", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}
			tokenString := headerParts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token inválido.", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("JWT auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "Token inválido.", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token não contém o usuário.", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Usuário do token é inválido.", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext reads the authenticated user id placed by the auth
// middleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Usuário não encontrado no contexto da requisição.", "", model.ErrInternalServer)
	}
	return value, nil
}
