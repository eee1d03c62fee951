package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats is the snapshot served on the debug endpoint.
type Stats struct {
	PID          int     `json:"pid"`
	RSSBytes     uint64  `json:"rss_bytes"`
	CPUPercent   float64 `json:"cpu_percent"`
	Threads      int32   `json:"threads"`
	Goroutines   int     `json:"goroutines"`
	AllocMemMb   uint64  `json:"alloc_mem_mb"`
	Uptime       string  `json:"uptime"`
	Sessions     int     `json:"sessions"`
	Requests     uint64  `json:"requests"`
	ServerErrors uint64  `json:"server_errors"`
}

// MonitoringManager counts requests and samples the process.
type MonitoringManager struct {
	log       *slog.Logger
	startedAt time.Time
	proc      *process.Process

	Requests     uint64
	ServerErrors uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "err", err)
	}
	return &MonitoringManager{log: log, startedAt: time.Now(), proc: p}
}

func (mm *MonitoringManager) IncrRequests() {
	atomic.AddUint64(&mm.Requests, 1)
}

func (mm *MonitoringManager) IncrServerErrors() {
	atomic.AddUint64(&mm.ServerErrors, 1)
}

// Snapshot gathers the counters and what gopsutil can tell about this process.
// Process fields stay zero when sampling fails.
func (mm *MonitoringManager) Snapshot(sessions int) Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := Stats{
		PID:          os.Getpid(),
		Goroutines:   runtime.NumGoroutine(),
		AllocMemMb:   mem.Alloc / 1024 / 1024,
		Uptime:       time.Since(mm.startedAt).Truncate(time.Second).String(),
		Sessions:     sessions,
		Requests:     atomic.LoadUint64(&mm.Requests),
		ServerErrors: atomic.LoadUint64(&mm.ServerErrors),
	}
	if mm.proc == nil {
		return stats
	}
	if memInfo, err := mm.proc.MemoryInfo(); err == nil {
		stats.RSSBytes = memInfo.RSS
	} else {
		mm.log.Debug("Failed to read memory info", "err", err)
	}
	if cpu, err := mm.proc.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	}
	if threads, err := mm.proc.NumThreads(); err == nil {
		stats.Threads = threads
	}
	return stats
}
