package metrics

import (
	"strconv"

	"github.com/pbnjay/memory"
	"golang.org/x/sys/unix"
)

// Collector supplies named metric values for the log summary. Collect
// is called once per finalize.
type Collector interface {
	Collect() map[string]string
}

// OS collects resource usage from the operating system.
type OS struct{}

// Collect returns peak RSS and CPU time for the process and its
// children (via getrusage) plus total and free system RAM.
func (OS) Collect() map[string]string {
	out := map[string]string{
		"system_ram_total_bytes": strconv.FormatUint(memory.TotalMemory(), 10),
		"system_ram_free_bytes":  strconv.FormatUint(memory.FreeMemory(), 10),
	}

	var self unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &self); err == nil {
		out["peak_rss_self_kb"] = strconv.FormatInt(int64(self.Maxrss), 10)
		out["user_cpu_seconds"] = formatTimeval(self.Utime)
		out["system_cpu_seconds"] = formatTimeval(self.Stime)
	}

	var children unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &children); err == nil {
		out["peak_rss_children_kb"] = strconv.FormatInt(int64(children.Maxrss), 10)
	}

	return out
}

func formatTimeval(tv unix.Timeval) string {
	seconds := float64(tv.Sec) + float64(tv.Usec)/1e6
	return strconv.FormatFloat(seconds, 'f', 6, 64)
}
