// SPDX-License-Identifier: MIT
package model_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctmc/model"
	"github.com/katalvlaran/ctmc/validate"
)

const flipFlopJSON = `{
  "version": 1,
  "size": 2,
  "matrix": [[-1, 1], [1, -1]],
  "initialVector": [1, 0],
  "timeEnd": 10,
  "steps": 100,
  "precision": 4
}`

func TestDecode_Canonical(t *testing.T) {
	t.Parallel()

	m, err := model.Decode(strings.NewReader(flipFlopJSON))
	require.NoError(t, err)
	require.Equal(t, &model.Model{
		Version:       1,
		Size:          2,
		Matrix:        [][]float64{{-1, 1}, {1, -1}},
		InitialVector: []float64{1, 0},
		TimeEnd:       10,
		Steps:         100,
		Precision:     4,
	}, m)
	require.NoError(t, m.Validate())
}

func TestDecode_Recovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		matrix [][]float64
		vector []float64
	}{
		{
			name:   "declared size truncates",
			doc:    `{"size": 2, "matrix": [[-1,1,0],[1,-1,0],[0,0,0]], "initialVector": [1,0,0]}`,
			matrix: [][]float64{{-1, 1}, {1, -1}},
			vector: []float64{1, 0},
		},
		{
			name:   "declared size pads",
			doc:    `{"size": 3, "matrix": [[-1,1],[1,-1]], "initialVector": [1]}`,
			matrix: [][]float64{{-1, 1, 0}, {1, -1, 0}, {0, 0, 0}},
			vector: []float64{1, 0, 0},
		},
		{
			name:   "size falls back to matrix length",
			doc:    `{"matrix": [[-2,2],[3,-3]], "initialVector": [0.5,0.25,0.25]}`,
			matrix: [][]float64{{-2, 2}, {3, -3}},
			vector: []float64{0.5, 0.25},
		},
		{
			name:   "zero size falls back to matrix length",
			doc:    `{"size": 0, "matrix": [[-2,2],[3,-3]], "initialVector": [1,0]}`,
			matrix: [][]float64{{-2, 2}, {3, -3}},
			vector: []float64{1, 0},
		},
		{
			name:   "empty matrix falls back to vector length",
			doc:    `{"matrix": [], "initialVector": [0.5,0.5]}`,
			matrix: [][]float64{{0, 0}, {0, 0}},
			vector: []float64{0.5, 0.5},
		},
		{
			name:   "null row becomes zeros",
			doc:    `{"matrix": [[-1,1], null], "initialVector": [1,0]}`,
			matrix: [][]float64{{-1, 1}, {0, 0}},
			vector: []float64{1, 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := model.Decode(strings.NewReader(tc.doc))
			require.NoError(t, err)
			require.Equal(t, tc.matrix, m.Matrix)
			require.Equal(t, tc.vector, m.InitialVector)
			require.Equal(t, len(tc.vector), m.Size)
		})
	}
}

func TestDecode_Defaults(t *testing.T) {
	t.Parallel()

	m, err := model.Decode(strings.NewReader(`{"matrix": [[-1,1],[1,-1]], "initialVector": [1,0]}`))
	require.NoError(t, err)
	require.Equal(t, model.Version, m.Version)
	require.InDelta(t, model.DefaultTimeEnd, m.TimeEnd, 0)
	require.Equal(t, model.DefaultSteps, m.Steps)
	require.Equal(t, model.DefaultPrecision, m.Precision)
	require.Nil(t, m.Meta)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"not json", `{"matrix": [`, model.ErrMalformed},
		{"missing matrix", `{"initialVector": [1,0]}`, model.ErrMissingField},
		{"null matrix", `{"matrix": null, "initialVector": [1,0]}`, model.ErrMissingField},
		{"missing vector", `{"matrix": [[-1,1],[1,-1]]}`, model.ErrMissingField},
		{"everything empty", `{"matrix": [], "initialVector": []}`, model.ErrInvalidSize},
		{"negative size", `{"size": -2, "matrix": [[0]], "initialVector": [1]}`, model.ErrInvalidSize},
		{"fractional size", `{"size": 2.5, "matrix": [[0]], "initialVector": [1]}`, model.ErrInvalidSize},
		{"huge size", `{"size": 1000000, "matrix": [[0]], "initialVector": [1]}`, model.ErrInvalidSize},
		{"single state", `{"size": 1, "matrix": [[0]], "initialVector": [1]}`, model.ErrInvalidSize},
		{"single row without size", `{"matrix": [[0]], "initialVector": [1]}`, model.ErrInvalidSize},
		{"one past max", `{"size": 101, "matrix": [], "initialVector": []}`, model.ErrInvalidSize},
		{"fractional steps", `{"steps": 10.5, "matrix": [[-1,1],[1,-1]], "initialVector": [1,0]}`, model.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := model.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.is)
			require.Nil(t, m)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	doc := `
size: 3
matrix:
  - [-1, 1, 0]
  - [0, -2, 2]
  - [0, 0, 0]
initialVector: [1, 0, 0]
timeEnd: 5
steps: 50
meta:
  savedAt: "2024-05-01T12:00:00.000Z"
`
	m, err := model.DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 3, m.Size)
	require.Equal(t, []float64{0, -2, 2}, m.Matrix[1])
	require.InDelta(t, 5.0, m.TimeEnd, 0)
	require.Equal(t, 50, m.Steps)
	require.Equal(t, model.DefaultPrecision, m.Precision)
	require.NotNil(t, m.Meta)
	require.Equal(t, "2024-05-01T12:00:00.000Z", m.Meta.SavedAt)
	require.NoError(t, m.Validate())

	_, err = model.DecodeYAML(strings.NewReader("matrix: [[1, 2]\n"))
	require.ErrorIs(t, err, model.ErrMalformed)
}

func TestFromMap_WeakTyping(t *testing.T) {
	t.Parallel()

	m, err := model.FromMap(map[string]any{
		"size":          "2",
		"matrix":        []any{[]any{-1, 1}, []any{"0.5", -0.5}},
		"initialVector": []any{0.5, 0.5},
		"timeEnd":       "3.5",
		"steps":         7,
	})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, 1}, {0.5, -0.5}}, m.Matrix)
	require.InDelta(t, 3.5, m.TimeEnd, 0)
	require.Equal(t, 7, m.Steps)

	_, err = model.FromMap(map[string]any{"matrix": "nope", "initialVector": []any{1}})
	require.ErrorIs(t, err, model.ErrMalformed)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *model.Model {
		return model.New([][]float64{{-1, 1}, {1, -1}}, []float64{1, 0})
	}
	require.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(m *model.Model)
		is     error
	}{
		{"size too small", func(m *model.Model) { m.Size = 1 }, validate.ErrValue},
		{"size too large", func(m *model.Model) { m.Size = 101 }, validate.ErrValue},
		{"zero steps", func(m *model.Model) { m.Steps = 0 }, validate.ErrValue},
		{"too many steps", func(m *model.Model) { m.Steps = 1000 }, validate.ErrValue},
		{"zero horizon", func(m *model.Model) { m.TimeEnd = 0 }, validate.ErrValue},
		{"infinite horizon", func(m *model.Model) { m.TimeEnd = math.Inf(1) }, validate.ErrValue},
		{"precision", func(m *model.Model) { m.Precision = 16 }, validate.ErrValue},
		{"size mismatch", func(m *model.Model) { m.Size = 3 }, validate.ErrStructural},
		{"vector mismatch", func(m *model.Model) { m.InitialVector = []float64{1} }, validate.ErrStructural},
		{"ragged", func(m *model.Model) { m.Matrix[1] = []float64{1} }, validate.ErrStructural},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := base()
			tc.mutate(m)
			require.ErrorIs(t, m.Validate(), tc.is)
		})
	}

	m := base()
	m.Steps = 0
	require.Equal(t, validate.OutOfRange, validate.KindOf(m.Validate()))
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	m := model.New([][]float64{{-0.5, 0.5}, {2, -2}}, []float64{0.25, 0.75})
	m.Stamp(time.Date(2024, 5, 1, 12, 30, 15, 123_000_000, time.UTC))
	require.Equal(t, "2024-05-01T12:30:15.123Z", m.Meta.SavedAt)

	var buf bytes.Buffer
	require.NoError(t, model.Encode(&buf, m))
	require.Contains(t, buf.String(), "\n  \"initialVector\": [")

	back, err := model.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, m, back)

	buf.Reset()
	require.NoError(t, model.EncodeYAML(&buf, m))
	back, err = model.DecodeYAML(&buf)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	m := model.New(make([][]float64, 4), nil)
	name := model.FileName(m, time.Date(2024, 1, 2, 3, 4, 5, 678_000_000, time.UTC))
	assert.Equal(t, "ctmc_model_4x4_2024-01-02T03-04-05-678Z.json", name)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "m.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(flipFlopJSON), 0o600))
	yamlPath := filepath.Join(dir, "m.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("matrix: [[-1, 1], [1, -1]]\ninitialVector: [1, 0]\n"), 0o600))

	fromJSON, err := model.ReadFile(jsonPath)
	require.NoError(t, err)
	fromYAML, err := model.ReadFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, fromJSON.Matrix, fromYAML.Matrix)

	_, err = model.ReadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestClone(t *testing.T) {
	t.Parallel()

	m := model.New([][]float64{{-1, 1}, {1, -1}}, []float64{1, 0})
	m.Stamp(time.Unix(0, 0))
	c := m.Clone()
	c.Matrix[0][0] = -7
	c.InitialVector[0] = 0
	c.Meta.SavedAt = "x"
	require.InDelta(t, -1.0, m.Matrix[0][0], 0)
	require.InDelta(t, 1.0, m.InitialVector[0], 0)
	require.NotEqual(t, "x", m.Meta.SavedAt)
}
