package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MMC-AppointmentService/internal/auth"
	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func newRouter(t *testing.T, tokens *auth.TokenManager) *mux.Router {
	t.Helper()

	r := mux.NewRouter()
	protected := r.PathPrefix("/admin").Subrouter()
	protected.Use(Auth(tokens, nopLogger{}))
	protected.HandleFunc("/dashboard-data", func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		require.True(t, ok)
		w.Write([]byte(claims.Subject))
	}).Methods(http.MethodGet)

	superadmin := protected.PathPrefix("").Subrouter()
	superadmin.Use(RequireSuperAdmin(nopLogger{}))
	superadmin.HandleFunc("/list-admins", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return r
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard-data", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(t, tokens)

	for _, header := range []string{"bogus", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard-data", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(t, tokens)

	token, err := tokens.Issue("alice", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard-data", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", rec.Body.String())
}

func TestRequireSuperAdmin_ForbidsAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(t, tokens)

	token, err := tokens.Issue("alice", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/list-admins", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireSuperAdmin_AllowsSuperAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(t, tokens)

	token, err := tokens.Issue("root", domain.RoleSuperAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/list-admins", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
