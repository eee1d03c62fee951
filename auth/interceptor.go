package auth

import (
	"chat-shell/errors"
	"context"
	"net/http"
)

const CookieName = "chat_shell_session"

type contextKey string

const SessionIDKey contextKey = "session_id"

// SessionIDFromRequest reads the session cookie and validates its token.
func (t *TokenIssuer) SessionIDFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", errors.ErrInvalidToken
	}
	return t.ValidateToken(cookie.Value)
}

// Cookie wraps a freshly signed token for the session.
func (t *TokenIssuer) Cookie(sessionID string) (*http.Cookie, error) {
	token, err := t.GenerateToken(sessionID)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(t.duration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok && id != ""
}
