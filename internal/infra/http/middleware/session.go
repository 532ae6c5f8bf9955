package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/session"
)

const SessionCookie = "sc_session"

type sessionKey struct{}

// Sessions attaches the caller's dashboard session to the request context,
// creating one (and its cookie) when the cookie is missing or expired.
func Sessions(store *session.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(SessionCookie); err == nil {
				if sess, ok := store.Get(c.Value); ok {
					next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
					return
				}
			}

			sess, err := store.Create(r.Context())
			if err != nil {
				logger.Error("create session", zap.Error(err))
				http.Error(w, "session unavailable", http.StatusServiceUnavailable)
				return
			}
			recordSessionCreated()

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

func SessionFrom(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*session.Session)
	return sess, ok
}
