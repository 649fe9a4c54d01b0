package benchmark

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

// MemorySnapshot captures heap and system memory at one point in time.
// System figures come from gopsutil and are best-effort: they are advisory
// context for benchmark reports, not a safety bound.
type MemorySnapshot struct {
	HeapAllocBytes   uint64
	SystemMemUsedMB  int64
	SystemMemTotalMB int64
}

// TakeMemorySnapshot samples the Go heap and, when available, system memory.
func TakeMemorySnapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	snapshot := MemorySnapshot{
		HeapAllocBytes: m.HeapAlloc,
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		snapshot.SystemMemUsedMB = int64(vmStat.Used / 1024 / 1024)
		snapshot.SystemMemTotalMB = int64(vmStat.Total / 1024 / 1024)
	}

	return snapshot
}

// HeapDelta returns the heap growth between two snapshots, clamped at zero:
// a GC cycle between samples can shrink the heap, which would otherwise show
// up as negative usage.
func HeapDelta(before, after MemorySnapshot) int64 {
	if after.HeapAllocBytes < before.HeapAllocBytes {
		return 0
	}
	return int64(after.HeapAllocBytes - before.HeapAllocBytes)
}
