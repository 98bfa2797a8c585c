// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias so RouterDeps can carry the client
// as *middleware.FirebaseAuthClient.
type FirebaseAuthClient = fbauth.Client

// context keys use a private type, not bare strings (SA1029).
type ctxKey struct{ name string }

var (
	ctxKeyUID         = ctxKey{name: "uid"}
	ctxKeyEmail       = ctxKey{name: "email"}
	ctxKeyDisplayName = ctxKey{name: "displayName"}
)

// fallbackDisplayName is used when neither the token claims nor the
// email yield a name for defect reports.
const fallbackDisplayName = "Usuario"

// OperatorAuthMiddleware verifies
//
//   - Authorization: Bearer <ID_TOKEN>
//
// and stores uid, email and the display name in the request context.
type OperatorAuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *OperatorAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if m == nil || m.FirebaseAuth == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		email := claimString(token.Claims, "email")
		name := claimString(token.Claims, "name")
		if name == "" {
			name = emailLocalPart(email)
		}
		ctx := WithIdentity(r.Context(), uid, email, name)

		log.Printf("[auth] path=%s uid=%s email=%s", r.URL.Path, uid, email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithIdentity stamps the verified identity onto ctx. The middleware
// uses it after token verification; handler tests use it directly.
func WithIdentity(ctx context.Context, uid, email, displayName string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUID, strings.TrimSpace(uid))
	if e := strings.TrimSpace(email); e != "" {
		ctx = context.WithValue(ctx, ctxKeyEmail, e)
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = fallbackDisplayName
	}
	return context.WithValue(ctx, ctxKeyDisplayName, name)
}

func claimString(claims map[string]any, key string) string {
	if claims == nil {
		return ""
	}
	if raw, ok := claims[key]; ok {
		if s, ok2 := raw.(string); ok2 {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return ""
}

// CurrentUID returns the Firebase UID stamped by the middleware.
func CurrentUID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyUID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// CurrentEmail returns the verified token's email, when present.
func CurrentEmail(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyEmail)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// CurrentDisplayName returns the name defect reports are signed with.
func CurrentDisplayName(r *http.Request) string {
	v := r.Context().Value(ctxKeyDisplayName)
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return fallbackDisplayName
}
