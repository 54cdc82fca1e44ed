// SPDX-License-Identifier: MIT

package instance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisep/instance"
	"github.com/katalvlaran/axisep/separator"
)

func TestStore_Paths(t *testing.T) {
	s := instance.NewStore("in", "out")
	assert.Equal(t, filepath.Join("in", "instance07"), s.InstancePath(7))
	assert.Equal(t, filepath.Join("out", "greedy_solution_12"), s.SolutionPath(12))
	assert.Equal(t, filepath.Join("in", "instance123"), s.InstancePath(123))
}

func TestStore_ParseNumber(t *testing.T) {
	s := instance.NewStore("", "")
	cases := []struct {
		name string
		n    int
		ok   bool
	}{
		{"instance01", 1, true},
		{filepath.Join("a", "b", "instance42"), 42, true},
		{"instance", 0, false},
		{"instance0x", 0, false},
		{"greedy_solution_01", 0, false},
		{"instance-3", 0, false},
	}
	for _, tc := range cases {
		n, ok := s.ParseNumber(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.n, n, tc.name)
	}
}

func TestStore_LoadSave(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "nested")
	s := instance.NewStore(in, out)

	require.NoError(t, os.WriteFile(s.InstancePath(1), []byte("2\n1 1\n2 2\n"), 0o644))
	pts, err := s.Load(1)
	require.NoError(t, err)
	assert.Equal(t, []separator.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, pts)

	_, err = s.Load(2)
	require.ErrorIs(t, err, instance.ErrNotFound)

	lines := []separator.Line{{Axis: separator.X, Intercept: 1.5}}
	require.NoError(t, s.Save(1, lines))
	raw, err := os.ReadFile(s.SolutionPath(1))
	require.NoError(t, err)
	assert.Equal(t, "1\nv 1.500000\n", string(raw))

	back, err := s.LoadSolution(1)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, 1.5, back[0].Intercept)

	_, err = s.LoadSolution(9)
	require.ErrorIs(t, err, instance.ErrNotFound)
}

func TestStore_LoadWrapsPath(t *testing.T) {
	in := t.TempDir()
	s := instance.NewStore(in, in)
	require.NoError(t, os.WriteFile(s.InstancePath(3), []byte("2\n1 1\n"), 0o644))

	_, err := s.Load(3)
	require.ErrorIs(t, err, instance.ErrCountMismatch)
	assert.Contains(t, err.Error(), "instance03")
}
