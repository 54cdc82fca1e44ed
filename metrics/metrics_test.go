// SPDX-License-Identifier: MIT

package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisep/metrics"
)

func TestRecorder(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveSolved(4, 0, true, time.Millisecond)
	r.ObserveSolved(3, 3, true, time.Millisecond)
	r.ObserveSolved(1, 1, false, time.Millisecond)
	r.ObserveFailed()

	n, err := testutil.GatherAndCount(r.Registry(),
		"axisep_instances_total", "axisep_candidates_skipped_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "three status series plus the skip counter")

	path := filepath.Join(t.TempDir(), "axisep.prom")
	require.NoError(t, r.WriteFile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `axisep_instances_total{status="solved"} 2`)
	assert.Contains(t, text, `axisep_instances_total{status="incomplete"} 1`)
	assert.Contains(t, text, `axisep_instances_total{status="failed"} 1`)
	assert.Contains(t, text, "axisep_candidates_skipped_total 4")
	assert.Contains(t, text, "axisep_incomplete_solutions_total 1")
	assert.Contains(t, text, "axisep_lines_committed_count 3")
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	r.ObserveSolved(1, 0, true, time.Second)
	r.ObserveFailed()
	assert.Nil(t, r.Registry())
	require.NoError(t, r.WriteFile(filepath.Join(t.TempDir(), "x")))
}
