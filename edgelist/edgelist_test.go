package edgelist_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/edgelist"
	"github.com/katalvlaran/pathcount/pathcount"
)

func TestReadFile_ReferenceScenarios(t *testing.T) {
	cases := []struct {
		file  string
		paths int64
		dist  int64
	}{
		{"city.txt", 3, 10},
		{"city_long_edge.txt", 3, 10},
		{"city_shortcut.txt", 1, 6},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			g, err := edgelist.ReadFile(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.True(t, g.Frozen())

			res, err := pathcount.Count(g, "1", "9")
			require.NoError(t, err)
			assert.Equal(t, tc.paths, res.Paths.Int64())
			assert.Equal(t, tc.dist, res.Distance)
		})
	}
}

func TestRead_SkipsBlankAndComments(t *testing.T) {
	in := "# header\n\n  1 2 3\n\t# indented comment\n02   3\t4\n"
	g, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)

	want := []core.Edge{
		{ID: "e1", From: "1", To: "2", Weight: 3},
		{ID: "e2", From: "2", To: "3", Weight: 4},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_SelfLoopAndParallel(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("1 1 4\n1 2 1\n1 2 1\n"))
	require.NoError(t, err)

	deg, err := g.Degree("1")
	require.NoError(t, err)
	assert.Equal(t, 4, deg) // two arcs for the loop, one per parallel edge
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRead_FormatErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"too few", "1 2\n", 1},
		{"too many", "1 2 3\n1 2 3 4\n", 2},
		{"not an integer", "1 2 3\n\n1 two 3\n", 3},
		{"float weight", "1 2 2.5\n", 1},
		{"negative weight", "1 2 -1\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := edgelist.Read(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, edgelist.ErrBadRecord)

			var fe *edgelist.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.line, fe.Line)
			assert.Contains(t, err.Error(), "3 integers")
		})
	}
}

func TestRead_NegativeWeightUnwrapsToCore(t *testing.T) {
	_, err := edgelist.Read(strings.NewReader("1 2 -5\n"))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestReadFile_Errors(t *testing.T) {
	_, err := edgelist.ReadFile(filepath.Join("testdata", "missing.txt"))
	require.Error(t, err)

	_, err = edgelist.ReadFile(filepath.Join("testdata", "bad.txt"))
	require.ErrorIs(t, err, edgelist.ErrBadRecord)
	assert.Contains(t, err.Error(), "bad.txt")
	assert.Contains(t, err.Error(), "line 2")
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := edgelist.ReadFile(filepath.Join("testdata", "city.txt"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g))

	again, err := edgelist.Read(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(g.Edges(), again.Edges()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
