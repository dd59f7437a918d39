package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// protectedPaths are operational routes that require a token when tokens are
// configured. The home page itself is always public.
var protectedPaths = map[string]struct{}{
	"/metrics": {},
}

// BearerAuthMiddleware returns a middleware that validates Bearer tokens on
// protected paths. If tokens is empty, authentication is disabled (pass-through).
func BearerAuthMiddleware(tokens []string) func(http.Handler) http.Handler {
	valid := make([][]byte, 0, len(tokens))
	for _, k := range tokens {
		if k != "" {
			valid = append(valid, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		// Auth disabled: pass everything through
		if len(valid) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := protectedPaths[r.URL.Path]; !ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					ErrorCodeUnauthorized, "authorization header must use Bearer scheme")
				return
			}

			if !tokenValid([]byte(auth[len(bearerPrefix):]), valid) {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func tokenValid(token []byte, valid [][]byte) bool {
	ok := false
	for _, v := range valid {
		if subtle.ConstantTimeCompare(token, v) == 1 {
			ok = true
		}
	}
	return ok
}
