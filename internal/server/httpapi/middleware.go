package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/server/auth"
	"github.com/dmitrijs2005/fittrack/internal/server/authz"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ctxKey string

const (
	principalKey ctxKey = "principal"
	requestIDKey ctxKey = "requestID"
)

// chiURLParam is split out so respond.go does not import chi directly.
func chiURLParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// requestID tags every request with a fresh id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestIDKey, uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate verifies the x-auth-token header and stores the principal in
// the request context. It terminates with 401 on a missing or invalid
// token: authentication is decided before the target resource is even
// looked at, so anonymous callers learn nothing about which ids exist.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get(common.AuthTokenHeader)
		if tokenString == "" {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ParseToken(tokenString, s.jwtSecret)
		if err != nil {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}

		p := &authz.Principal{UserID: claims.UserID, Admin: claims.Admin}
		ctx := context.WithValue(r.Context(), principalKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFrom returns the verified principal, or nil when the request is
// anonymous.
func principalFrom(ctx context.Context) *authz.Principal {
	p, _ := ctx.Value(principalKey).(*authz.Principal)
	return p
}
