package observability

import (
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Snapshot(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug))

	mm.IncrRequests()
	mm.IncrRequests()
	mm.IncrServerErrors()

	stats := mm.Snapshot(4)
	req.Equal(os.Getpid(), stats.PID)
	req.Equal(uint64(2), stats.Requests)
	req.Equal(uint64(1), stats.ServerErrors)
	req.Equal(4, stats.Sessions)
	req.Positive(stats.Goroutines)
	req.NotEmpty(stats.Uptime)
}
