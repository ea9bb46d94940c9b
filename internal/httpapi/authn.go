package httpapi

import (
	"net/http"
	"strings"

	"github.com/rimrim990/delivery-service/internal/auth"
)

const authorizationHeader = "Authorization"

// Paths reachable without a principal. Everything else requires one of the
// service roles.
var (
	publicPaths    = []string{"/healthz", "/readyz", "/metrics"}
	publicPrefixes = []string{"/api/auth/"}

	protectedRoles = []string{auth.RoleNormal, auth.RoleVIP, auth.RoleAdmin}
)

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// withAuth resolves the bearer token into a request principal. It never
// rejects: an absent or invalid token just leaves the request anonymous,
// and the authorization gate decides what anonymity may reach.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(authorizationHeader)
		if !strings.HasPrefix(header, auth.BearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}
		principal, err := a.auth.VerifyAccessToken(auth.StripBearer(header))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := auth.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole is the fail-closed side of the pair: any non-public path
// needs an authenticated principal holding one of the service roles.
func (a *API) requireRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok || !principal.HasAnyRole(protectedRoles...) {
			writeFail(w, http.StatusForbidden, "access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}
