package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCapacityCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capacity.csv")
	out, err := execute(t, "capacity", "-o", path, "-f", "csv", "--samples", "5", "--capacity", "3")
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"Capacity", "0", "3"}, records[1])
	assert.Equal(t, "36000", records[5][1])
	assert.Contains(t, out, "Total dose:      0.504 Gy")
}

func TestVoltageCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voltage.html")
	out, err := execute(t, "voltage", "-o", path, "--chemistry", "silver-zinc", "--samples", "50", "-q")
	require.NoError(t, err)
	assert.Empty(t, out)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Silver-zinc")
	assert.NotContains(t, string(html), "Lithium-ion")
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	params := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(params, []byte("decay:\n  samples: 3\n"), 0o644))

	path := filepath.Join(dir, "capacity.csv")
	_, err := execute(t, "--config", params, "capacity", "-o", path, "-f", "csv", "-q")
	require.NoError(t, err)
	assert.Len(t, readCSV(t, path), 4)
}

func TestParamsCommand(t *testing.T) {
	out, err := execute(t, "params")
	require.NoError(t, err)
	assert.Contains(t, out, "dose_rate: 1.4e-05")
	assert.Contains(t, out, "name: Nickel-hydrogen")
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad format", args: []string{"capacity", "-f", "png", "-o", filepath.Join(dir, "a")}},
		{name: "bad chemistry", args: []string{"voltage", "--chemistry", "lead-acid", "-o", filepath.Join(dir, "b")}},
		{name: "bad capacity", args: []string{"capacity", "--capacity", "0", "-o", filepath.Join(dir, "c")}},
		{name: "missing config", args: []string{"--config", filepath.Join(dir, "missing.yaml"), "params"}},
		{name: "watch without config", args: []string{"serve", "--watch"}},
		{name: "bad log level", args: []string{"--log-level", "loud", "params"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
