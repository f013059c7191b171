package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/qsort-bench/qsort"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunSorts(t *testing.T) {
	out, _, err := execute(t, "400000")
	require.NoError(t, err)
	assert.Contains(t, out, "sorting 100,000 elements")
	assert.Contains(t, out, "run 1: took")
	assert.Contains(t, out, "sorted")
}

func TestRunEmpty(t *testing.T) {
	out, _, err := execute(t, "3")
	require.NoError(t, err)
	assert.Contains(t, out, "sorting 0 elements")
	assert.Contains(t, out, "sorted")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no_args", nil},
		{"two_args", []string{"40", "80"}},
		{"not_a_number", []string{"forty"}},
		{"negative", []string{"-40"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, out+errOut, "Usage:")
		})
	}
}

func TestRunRepeated(t *testing.T) {
	out, _, err := execute(t, "--runs", "3", "--seed", "7", "40000")
	require.NoError(t, err)
	assert.Contains(t, out, "run 3: took")
	assert.Contains(t, out, "cycles  min")
	assert.Contains(t, out, "time    min")
}

func TestRunInvalidRuns(t *testing.T) {
	_, _, err := execute(t, "--runs", "0", "40")
	require.Error(t, err)
}

func TestRunStackOverflow(t *testing.T) {
	out, _, err := execute(t, "--stack", "2", "4000")
	require.ErrorIs(t, err, qsort.ErrStackOverflow)
	assert.Contains(t, out, "sort aborted")
}

func TestRunInvalidStack(t *testing.T) {
	_, _, err := execute(t, "--stack", "3", "4000")
	require.ErrorIs(t, err, qsort.ErrInvalidCapacity)
}

func TestRunFinisher(t *testing.T) {
	out, _, err := execute(t, "--finisher", "selection", "40000")
	require.NoError(t, err)
	assert.Contains(t, out, "selection finisher")

	_, _, err = execute(t, "--finisher", "bubble", "40000")
	require.Error(t, err)
}

func TestRunQuiet(t *testing.T) {
	out, _, err := execute(t, "--quiet", "40000")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunVerboseTracesPartitions(t *testing.T) {
	_, errOut, err := execute(t, "-v", "400")
	require.NoError(t, err)
	assert.Contains(t, errOut, "partition [")
}
