package monitor

import (
	"context"
	"math"
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	MEM float64 // in MB
}

// Monitor provides process resource monitoring for the footer
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
	Self(ctx context.Context) Stats
}

type monitor struct {
	mu   sync.Mutex
	self *process.Process
}

// NewMonitor creates a new Monitor instance
func NewMonitor() Monitor {
	return &monitor{}
}

// GetStats samples the process once, CPU is averaged over its lifetime
func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	stats.MEM = memoryMB(ctx, proc)

	return stats, nil
}

// Self samples the running process. CPU is measured since the previous call
func (m *monitor) Self(ctx context.Context) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.self == nil {
		proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid())) // #nosec G115 -- own PID
		if err != nil {
			return Stats{}
		}

		m.self = proc
	}

	stats := Stats{MEM: memoryMB(ctx, m.self)}

	if cpuPercent, err := m.self.PercentWithContext(ctx, 0); err == nil {
		stats.CPU = cpuPercent
	}

	return stats
}

func memoryMB(ctx context.Context, proc *process.Process) float64 {
	memInfo, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0
	}

	return float64(memInfo.RSS) / 1024 / 1024
}
