package internal

import (
	"chat-shell/observability"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMiddlewares(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(log)
	s := &WebServer{log: log, monitoring: monitoring}

	t.Run("should turn a panic into a 500", func(t *testing.T) {
		req := require.New(t)
		h := chainMiddlewares(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}), s.withRecovery, s.withLogging, withRequestID)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		req.Equal(http.StatusInternalServerError, w.Code)
		req.NotEmpty(w.Header().Get("X-Request-ID"))
		req.Equal(uint64(1), monitoring.Snapshot(0).ServerErrors)
	})

	t.Run("should expose the request id to handlers", func(t *testing.T) {
		req := require.New(t)
		var seen string
		h := withRequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = requestID(r.Context())
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		req.NotEmpty(seen)
		req.Equal(seen, w.Header().Get("X-Request-ID"))
	})
}
