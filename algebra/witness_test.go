package algebra

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWitnessesMatchComponentDegrees(t *testing.T) {
	g, err := Analyze(context.Background(), 2, 1, []int64{5, 5, 32})
	require.NoError(t, err)

	ws, err := Witnesses(context.Background(), g, 48)
	require.NoError(t, err)
	require.Len(t, ws, len(g.Components))
	for i, w := range ws {
		assert.True(t, w.Algebra.Equal(g.Components[i].Algebra))
		assert.Equal(t, int(w.Algebra.T), w.Field.Degree)
		assert.Equal(t, int(w.Algebra.T), w.Field.ElementDegree(w.Field.X()))
	}
}

func TestWitnessIsDeterministic(t *testing.T) {
	g, err := Analyze(context.Background(), 3, 5, []int64{9})
	require.NoError(t, err)
	require.True(t, g.IsLocal)

	a, err := ResidueField(g, 48)
	require.NoError(t, err)
	b, err := ResidueField(g, 48)
	require.NoError(t, err)
	assert.Equal(t, a.Chi, b.Chi)
	assert.Equal(t, 5, a.Degree)
}

func TestWitnessLimits(t *testing.T) {
	g, err := Analyze(context.Background(), 2, 50, []int64{1})
	require.NoError(t, err)
	_, err = ResidueField(g, 48)
	assert.True(t, errors.Is(err, ErrWitnessTooLarge))

	ns, err := Analyze(context.Background(), 2, 1, []int64{3})
	require.NoError(t, err)
	_, err = ResidueField(ns, 48)
	require.Error(t, err, "non-local algebras have no single residue field")
}

func TestKeyAndFingerprint(t *testing.T) {
	a, err := Analyze(context.Background(), 2, 1, []int64{5, 5, 32})
	require.NoError(t, err)
	b, err := Analyze(context.Background(), 2, 1, []int64{5, 5, 32})
	require.NoError(t, err)
	c, err := Analyze(context.Background(), 2, 1, []int64{5, 32, 5})
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Key().Fingerprint(), b.Key().Fingerprint())
	assert.Len(t, a.Key().Fingerprint(), 32)
	// parameter order is part of the identity
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key().Fingerprint(), c.Key().Fingerprint())
	assert.False(t, a.Equal(nil))
}

func TestResidueFieldGeneratedByX(t *testing.T) {
	for _, tc := range []struct {
		p, t  int64
		param []int64
	}{{101, 1, []int64{1}}, {7, 3, []int64{7}}, {2, 12, []int64{8}}} {
		g, err := Analyze(context.Background(), tc.p, tc.t, tc.param)
		require.NoError(t, err)
		f, err := ResidueField(g, 48)
		require.NoError(t, err, "GF(%d^%d)", tc.p, tc.t)
		assert.Equal(t, int(tc.t), f.ElementDegree(f.X()))
	}
}
