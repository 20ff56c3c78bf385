package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/builder"
)

func TestBuildGraph_Frozen(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	assert.True(t, g.Frozen())
	assert.Equal(t, []string{"0", "1", "2"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestConstructors_Sizes(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"complete", builder.Complete(5), 5, 10},
		{"diamonds", builder.Diamonds(3), 10, 12},
		{"parallel", builder.Parallel("u", "v", 4), 2, 4},
		{"sparse-full", builder.RandomSparse(4, 1), 4, 6},
		{"sparse-empty", builder.RandomSparse(4, 0), 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestConstructors_Validation(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"diamonds", builder.Diamonds(0), builder.ErrTooFewVertices},
		{"parallel", builder.Parallel("u", "v", 0), builder.ErrTooFewVertices},
		{"probability", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(1, 5)),
	}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)

	opts = []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(1, 5)),
	}
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)

	require.Equal(t, g1.Edges(), g2.Edges())
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(5))
	}
}

func TestWithIDPrefix(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDPrefix("v")}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, g.Vertices())
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(3), builder.ConstantWeightFn(3)(nil))
	assert.Equal(t, int64(2), builder.UniformWeightFn(2, 9)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(4, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestGridID(t *testing.T) {
	assert.Equal(t, "2,3", builder.GridID(2, 3))
	assert.Equal(t, "h4", builder.HubID(4))
}
