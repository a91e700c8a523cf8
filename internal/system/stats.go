package system

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Snapshot is the resource usage of the host and this process.
type Snapshot struct {
	CPUs        int
	RSS         uint64
	MemUsed     uint64
	MemTotal    uint64
	MemUsedPerc float64
}

// TakeSnapshot collects whatever the platform reports; unavailable values
// stay zero.
func TakeSnapshot() Snapshot {
	var s Snapshot
	if n, err := cpu.Counts(true); err == nil {
		s.CPUs = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsed, s.MemTotal, s.MemUsedPerc = vm.Used, vm.Total, vm.UsedPercent
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := p.MemoryInfo(); err == nil {
			s.RSS = mi.RSS
		}
	}
	return s
}

func (s Snapshot) String() string {
	return fmt.Sprintf("CPUs: %d | RSS: %s | Memory: %s / %s (%.1f%%)",
		s.CPUs, FormatBytes(s.RSS), FormatBytes(s.MemUsed), FormatBytes(s.MemTotal), s.MemUsedPerc)
}

func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
