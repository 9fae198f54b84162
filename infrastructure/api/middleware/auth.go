package middleware

import "net/http"

// AuthConfig holds API key authentication settings.
type AuthConfig struct {
	apiKeys map[string]struct{}
}

// NewAuthConfigWithKeys creates an AuthConfig accepting the given keys.
// An empty or nil key list disables authentication.
func NewAuthConfigWithKeys(keys []string) AuthConfig {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return AuthConfig{apiKeys: set}
}

// Enabled reports whether authentication is active.
func (c AuthConfig) Enabled() bool {
	return len(c.apiKeys) > 0
}

// Valid reports whether the given key is accepted.
func (c AuthConfig) Valid(key string) bool {
	_, ok := c.apiKeys[key]
	return ok
}

// WriteProtect returns middleware that requires a valid X-API-KEY header on
// mutating methods (POST, PUT, PATCH, DELETE). Read methods pass through.
// With no keys configured, all requests pass.
func WriteProtect(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled() || !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Valid(r.Header.Get("X-API-KEY")) {
				WriteError(w, r, NewAuthenticationError("invalid or missing API key"), nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WriteProtectAuth is shorthand for WriteProtect with the given keys.
func WriteProtectAuth(keys []string) func(http.Handler) http.Handler {
	return WriteProtect(NewAuthConfigWithKeys(keys))
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
