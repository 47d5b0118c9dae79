package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/web/templates/layout"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"

	// SessionCookieName is the cookie holding the session token
	SessionCookieName = "session"
)

// SessionProvider loads and creates sessions
type SessionProvider interface {
	StartSession(ctx context.Context) (*model.Session, error)
	Session(ctx context.Context, sessionID model.SessionID) (*model.Session, error)
}

// GetSession retrieves the session from the request context
func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionContextKey).(*model.Session)
	return session
}

// EnsureSession returns middleware that loads the visitor's session from
// the session cookie, starting a new one if the cookie is missing or stale.
// A stale cookie also sets a flash notice for the current page; Flash must
// run first.
func EnsureSession(sessions SessionProvider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var session *model.Session
			ctx := r.Context()

			cookie, err := r.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				session, err = sessions.Session(r.Context(), model.SessionID(cookie.Value))
				switch {
				case err == nil:
				case errors.Is(err, model.ErrSessionNotFound):
					ctx = context.WithValue(ctx, flashContextKey, &layout.FlashMessage{
						Type:    layout.FlashWarning,
						Message: "Your previous session expired, so your stats have been reset.",
					})
				default:
					logger.Error("failed to load session", slog.String("error", err.Error()))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
			}

			if session == nil {
				session, err = sessions.StartSession(r.Context())
				if err != nil {
					logger.Error("failed to start session", slog.String("error", err.Error()))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				setSessionCookie(w, session)
			}

			ctx = context.WithValue(ctx, sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    string(session.ID),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
