package metrics

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats - снимок ресурсов процесса
type ProcessStats struct {
	CPUPercent float64 `json:"cpu_percent"`
	RSSBytes   uint64  `json:"rss_bytes"`
	RSS        string  `json:"rss"`
	HeapMB     float64 `json:"heap_mb"`
	Goroutines int     `json:"goroutines"`
	NumGC      uint32  `json:"num_gc"`
	Uptime     string  `json:"uptime"`
}

// ProcessSampler собирает статистику текущего процесса через gopsutil
type ProcessSampler struct {
	StartTime time.Time
	proc      *process.Process
}

// NewProcessSampler создаёт сборщик для текущего процесса
func NewProcessSampler() (*ProcessSampler, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть процесс: %w", err)
	}
	return &ProcessSampler{StartTime: time.Now(), proc: proc}, nil
}

// Sample возвращает текущий снимок. Ошибки gopsutil не фатальны: поле остаётся нулевым.
func (ps *ProcessSampler) Sample() ProcessStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats := ProcessStats{
		HeapMB:     float64(m.HeapAlloc) / 1024 / 1024,
		Goroutines: runtime.NumGoroutine(),
		NumGC:      m.NumGC,
		Uptime:     FormatUptime(time.Since(ps.StartTime)),
	}

	if cpuPercent, err := ps.proc.CPUPercent(); err == nil {
		stats.CPUPercent = cpuPercent
	} else if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		// Если не удалось получить метрику процесса, берём системную
		stats.CPUPercent = percents[0]
	}

	if mem, err := ps.proc.MemoryInfo(); err == nil && mem != nil {
		stats.RSSBytes = mem.RSS
		stats.RSS = humanize.IBytes(mem.RSS)
	}
	return stats
}

// FormatUptime форматирует время работы
func FormatUptime(uptime time.Duration) string {
	days := int(uptime.Hours()) / 24
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dд %dч %dм %dс", days, hours, minutes, seconds)
	} else if hours > 0 {
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	} else {
		return fmt.Sprintf("%dс", seconds)
	}
}
