// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flipFlop = `{"size":2,"matrix":[[-1,1],[2,-2]],"initialVector":[1,0],"timeEnd":2,"steps":20,"precision":4}`

func writeModel(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeModel(t, "flip.json", flipFlop)

	out, err := run(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "p0 = 0.6667 ≈ 2/3")
	assert.Contains(t, out, "p1 = 0.3333 ≈ 1/3")

	out, err = run(t, "analyze", "--format", "json", path)
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.EqualValues(t, 2, report["states"])

	out, err = run(t, "analyze", "--format", "chart", path)
	require.NoError(t, err)
	var chart struct {
		Labels   []float64 `json:"labels"`
		Datasets []struct {
			Label  string `json:"label"`
			Colour string `json:"colour"`
		} `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &chart))
	assert.Len(t, chart.Labels, 21)
	require.Len(t, chart.Datasets, 2)
	assert.Equal(t, "hsl(30, 70%, 50%)", chart.Datasets[1].Colour)

	_, err = run(t, "analyze", "--format", "xml", path)
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	good := writeModel(t, "good.json", flipFlop)
	out, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "[ok  ] matrix")

	bad := writeModel(t, "bad.json", `{"size":2,"matrix":[[-1,2],[2,-2]],"initialVector":[1,0]}`)
	out, err = run(t, "validate", bad)
	require.ErrorIs(t, err, errInvalidModel)
	assert.Contains(t, out, "[FAIL] matrix")
}

func TestGraphCommand(t *testing.T) {
	path := writeModel(t, "flip.yaml", "size: 2\nmatrix: [[-1, 1], [2, -2]]\ninitialVector: [1, 0]\n")

	out, err := run(t, "graph", path)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, "S1 -> S0 [label=<2>];")

	out, err = run(t, "graph", "-f", "mermaid", path)
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")

	out, err = run(t, "graph", "-f", "json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"irreducible": true`)
}

func TestStationaryCommand(t *testing.T) {
	path := writeModel(t, "flip.json", flipFlop)

	out, err := run(t, "stationary", "--precision", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "p0 = 0.67 ≈ 2/3\np1 = 0.33 ≈ 1/3\n", out)

	out, err = run(t, "stationary", "--latex", path)
	require.NoError(t, err)
	assert.Contains(t, out, `\begin{bmatrix}`)
	assert.Contains(t, out, `\frac{2}{3}`)
}

func TestNormalizeCommand(t *testing.T) {
	// oversized matrix is truncated to size
	path := writeModel(t, "raw.json", `{"size":2,"matrix":[[-1,1,0],[2,-2,0],[0,0,0]],"initialVector":[1]}`)

	out, err := run(t, "normalize", path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []any{[]any{-1.0, 1.0}, []any{2.0, -2.0}}, doc["matrix"])
	assert.Equal(t, []any{1.0, 0.0}, doc["initialVector"])
	assert.Contains(t, doc, "meta")

	dst := filepath.Join(t.TempDir(), "out.yaml")
	_, err = run(t, "normalize", "-o", dst, path)
	require.NoError(t, err)
	body, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(body), "initialVector:")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ctmc version dev\n", out)
}

func TestInvalidGlobalFlags(t *testing.T) {
	path := writeModel(t, "flip.json", flipFlop)

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"zero workers", []string{"--workers", "0"}, "invalid --workers 0"},
		{"negative workers", []string{"--workers", "-3"}, "invalid --workers -3"},
		{"precision too large", []string{"--precision", "16"}, "invalid --precision 16"},
		{"precision below keep", []string{"--precision", "-2"}, "invalid --precision -2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, append([]string{"stationary"}, append(tc.args, path)...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Empty(t, out)
		})
	}

	out, err := run(t, "stationary", "--workers", "4", path)
	require.NoError(t, err)
	assert.Contains(t, out, "p0 = 0.6667")
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "analyze", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
