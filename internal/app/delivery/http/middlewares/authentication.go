package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/utils"
)

// Authenticate validates the bearer token and loads the redis session into
// the request context. Requests without a live session never reach the
// controllers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route to the given roles. Admin always passes.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
				return
			}
			if session.Role == constvars.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}
			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
		})
	}
}

// SessionFromContext returns the authenticated session or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session
}

// SessionIDFromContext returns the session id carried by the JWT.
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}
