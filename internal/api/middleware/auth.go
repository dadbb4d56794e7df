package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/auth"
	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

const (
	msgMissingToken     = "требуется токен авторизации"
	msgInvalidToken     = "недействительный токен авторизации"
	msgSuperadminOnly   = "операция доступна только супер-администратору"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

type claimsContextKey struct{}

// TokenVerifier проверяет токен и возвращает его claims
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth middleware проверки Bearer-токена
// Claims валидного токена кладутся в контекст запроса
func Auth(verifier TokenVerifier, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(authorizationHeader)
			if header == "" {
				log.Warn("%s %s - Missing authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			token := strings.TrimPrefix(header, bearerPrefix)
			if token == header || token == "" {
				log.Warn("%s %s - Malformed authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				log.Warn("%s %s - Token verification failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin middleware проверки роли супер-администратора
// Должен стоять после Auth
func RequireSuperAdmin(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				log.Warn("%s %s - No claims in context", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if claims.Role != domain.RoleSuperAdmin {
				log.Warn("%s %s - Superadmin required, got role=%s for %s",
					r.Method, r.URL.Path, claims.Role, claims.Subject)
				handlers.RespondForbidden(w, msgSuperadminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims извлекает claims токена из контекста запроса
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*auth.Claims)
	return claims, ok
}
