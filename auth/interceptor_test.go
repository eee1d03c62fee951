package auth_test

import (
	"chat-shell/auth"
	"chat-shell/errors"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionIDFromRequest(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("a-test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("should read the session id from a valid cookie", func(t *testing.T) {
		req := require.New(t)
		cookie, err := issuer.Cookie("abc")
		req.NoError(err)
		req.Equal(auth.CookieName, cookie.Name)
		req.True(cookie.HttpOnly)
		req.Equal(3600, cookie.MaxAge)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)

		id, err := issuer.SessionIDFromRequest(r)
		req.NoError(err)
		req.Equal("abc", id)
	})

	t.Run("should fail when the cookie is missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := issuer.SessionIDFromRequest(r)
		require.ErrorIs(t, err, errors.ErrInvalidToken)
	})

	t.Run("should fail with a tampered cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "invalid-token-string"})
		_, err := issuer.SessionIDFromRequest(r)
		require.ErrorIs(t, err, errors.ErrInvalidToken)
	})
}

func TestSessionIDContext(t *testing.T) {
	req := require.New(t)
	_, ok := auth.SessionIDFromContext(context.Background())
	req.False(ok)

	ctx := auth.WithSessionID(context.Background(), "abc")
	id, ok := auth.SessionIDFromContext(ctx)
	req.True(ok)
	req.Equal("abc", id)
}
