package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
runs:
  - name: tiny
    count: 5
    elem: float64
  - count: 17
  - name: samples
    count: 9
    elem: sample
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, []Run{
		{Name: "tiny", Count: 5, Elem: ElemFloat64},
		{Name: "run-2", Count: 17, Elem: ElemInt64},
		{Name: "samples", Count: 9, Elem: ElemSample},
	}, s.Runs)
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no runs", "runs: []\n"},
		{"negative count", "runs:\n  - count: -1\n"},
		{"unknown elem", "runs:\n  - count: 3\n    elem: complex128\n"},
		{"bad yaml", "runs: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
