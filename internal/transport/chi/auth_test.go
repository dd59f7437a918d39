package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_EmptyTokens_PassThrough(t *testing.T) {
	mw := BearerAuthMiddleware(nil)
	handler := mw(okHandler())

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("empty tokens: got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestAuthMiddleware_EmptyStringTokens_PassThrough(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"", ""})
	handler := mw(okHandler())

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("empty string tokens: got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestAuthMiddleware_MissingHeader_401(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	handler := mw(okHandler())

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("missing header: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != ErrorCodeUnauthorized {
		t.Errorf("error code: got %s, want %s", errResp.Code, ErrorCodeUnauthorized)
	}
}

func TestAuthMiddleware_BasicScheme_401(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	handler := mw(okHandler())

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("basic scheme: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddleware_InvalidToken_401(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	handler := mw(okHandler())

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	req.Header.Set("Authorization", "Bearer wrong-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddleware_MultipleTokens(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"tok1", "tok2"})
	handler := mw(okHandler())

	for _, tok := range []string{"tok1", "tok2"} {
		req := httptest.NewRequest("GET", "/metrics", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+tok)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("token %s: got %d, want %d", tok, rr.Code, http.StatusOK)
		}
	}
}

func TestAuthMiddleware_PublicPaths(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret"})
	handler := mw(okHandler())

	for _, path := range []string{"/", "/api/v1/home", "/health"} {
		req := httptest.NewRequest("GET", path, http.NoBody)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("public path %s: got %d, want %d", path, rr.Code, http.StatusOK)
		}
	}
}
