package metrics

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_Collect(t *testing.T) {
	got := OS{}.Collect()

	for _, key := range []string{
		"system_ram_total_bytes",
		"system_ram_free_bytes",
		"peak_rss_self_kb",
		"user_cpu_seconds",
		"system_cpu_seconds",
		"peak_rss_children_kb",
	} {
		assert.Contains(t, got, key)
	}

	total, err := strconv.ParseUint(got["system_ram_total_bytes"], 10, 64)
	require.NoError(t, err)
	assert.Greater(t, total, uint64(0), "machine should report some RAM")

	rss, err := strconv.ParseInt(got["peak_rss_self_kb"], 10, 64)
	require.NoError(t, err)
	assert.Greater(t, rss, int64(0), "a running test binary has a nonzero peak RSS")

	user, err := strconv.ParseFloat(got["user_cpu_seconds"], 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, user, 0.0)
}
