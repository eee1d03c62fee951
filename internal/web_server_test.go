package internal

import (
	"chat-shell/auth"
	"chat-shell/fixtures"
	"chat-shell/observability"
	"chat-shell/repositories"
	"chat-shell/services"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	directory, err := repositories.OpenDirectory(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = directory.Close() })
	require.NoError(t, directory.LoadDataset(fixtures.Seed(start)))

	svc := services.NewShellService(log, directory, repositories.NewMemorySessionRepository(time.Hour),
		func() time.Time { return start.Add(3 * time.Minute) })
	tokens, err := auth.NewTokenIssuer("a-test-secret", time.Hour)
	require.NoError(t, err)

	return NewWebServer(log, svc, tokens, observability.NewMonitoringManager(log), directory).Handler()
}

// browser keeps the session cookie between requests.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) post(target string, form url.Values) {
	b.t.Helper()
	w := b.do(http.MethodPost, target, form)
	require.Equal(b.t, http.StatusSeeOther, w.Code, w.Body.String())
	require.Equal(b.t, "/", w.Header().Get("Location"))
}

func (b *browser) page() string {
	b.t.Helper()
	w := b.do(http.MethodGet, "/", nil)
	require.Equal(b.t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestWebServer_LoginFlow(t *testing.T) {
	req := require.New(t)
	b := &browser{t: t, handler: newTestServer(t)}

	body := b.page()
	req.NotNil(b.cookie)
	req.Contains(body, "Welcome Back")
	req.Contains(body, "Need an account? Sign up")

	// An incomplete form is silently ignored.
	b.post("/submit", url.Values{"email": {"a@b.c"}})
	req.Contains(b.page(), "Welcome Back")

	b.post("/submit", url.Values{"email": {"a@b.c"}, "password": {"pw"}})
	body = b.page()
	req.Contains(body, "Arnold Chirchir")
	req.Contains(body, "Sarah Johnson")
	req.Contains(body, "Hey! How are you doing today?")
	req.Contains(body, "8m ago")
	req.NotContains(body, "Welcome Back")

	b.post("/view/groups", nil)
	body = b.page()
	req.Contains(body, "Family Group")
	req.Contains(body, `<span class="badge">12</span>`)
	req.Contains(body, "1h ago")

	b.post("/view/me", nil)
	body = b.page()
	req.Contains(body, "+254 712 345 678")
	req.Contains(body, "Notification Preferences")

	b.post("/logout", nil)
	req.Contains(b.page(), "Welcome Back")
}

func TestWebServer_Register(t *testing.T) {
	req := require.New(t)
	b := &browser{t: t, handler: newTestServer(t)}
	b.page()

	b.post("/toggle", nil)
	req.Contains(b.page(), "Create Account")

	b.post("/submit", url.Values{"email": {"jane@example.com"}, "password": {"pw"}})
	req.Contains(b.page(), "Create Account")

	b.post("/submit", url.Values{"name": {"Jane Doe"}, "email": {"jane@example.com"}, "password": {"pw"}})
	body := b.page()
	req.Contains(body, "Jane Doe")
	req.Contains(body, "<span>AC</span>")
}

func TestWebServer_NameSurvivesToggle(t *testing.T) {
	req := require.New(t)
	b := &browser{t: t, handler: newTestServer(t)}
	b.page()

	b.post("/toggle", nil)
	b.post("/submit", url.Values{"name": {"Jane Doe"}, "email": {""}, "password": {""}})
	req.Contains(b.page(), "Create Account")

	b.post("/toggle", nil)
	body := b.page()
	req.Contains(body, "Welcome Back")
	req.NotContains(body, `name="name"`)

	// The sign in form posts no name field.
	b.post("/submit", url.Values{"email": {"a@b.c"}, "password": {"pw"}})
	body = b.page()
	req.Contains(body, "<h2>Jane Doe</h2>")
	req.NotContains(body, fixtures.DefaultName)
}

func TestWebServer_SearchIsInert(t *testing.T) {
	req := require.New(t)
	b := &browser{t: t, handler: newTestServer(t)}
	b.page()
	b.post("/submit", url.Values{"email": {"a@b.c"}, "password": {"pw"}})

	b.post("/search", url.Values{"q": {"nobody"}})
	body := b.page()
	req.Contains(body, `value="nobody"`)
	req.Contains(body, "Mike Chen")
	req.Contains(body, "Emma Davis")
}

func TestWebServer_UnknownView(t *testing.T) {
	b := &browser{t: t, handler: newTestServer(t)}
	b.page()
	w := b.do(http.MethodPost, "/view/settings", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebServer_InvalidCookieOpensNewSession(t *testing.T) {
	req := require.New(t)
	b := &browser{t: t, handler: newTestServer(t)}
	b.cookie = &http.Cookie{Name: auth.CookieName, Value: "forged"}

	req.Contains(b.page(), "Welcome Back")
	req.NotEqual("forged", b.cookie.Value)
}

func TestWebServer_Static(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	req.Equal(http.StatusOK, w.Code)
	req.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/css"))

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	req.Equal(http.StatusNotFound, w.Code)
}

func TestContentType_SniffsWithoutExtension(t *testing.T) {
	ct := contentType("static/icon", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	require.Equal(t, "image/svg+xml", ct)
}

func TestWebServer_Stats(t *testing.T) {
	req := require.New(t)
	b := &browser{t: t, handler: newTestServer(t)}
	b.page()

	w := b.do(http.MethodGet, "/debug/stats", nil)
	req.Equal(http.StatusOK, w.Code)

	var stats observability.Stats
	req.NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	req.Equal(1, stats.Sessions)
	req.Equal(uint64(2), stats.Requests)
}
