package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

func curvedTrack(t *testing.T, params ...param.Parameter) CurvedTrack {
	t.Helper()
	desc := Description{Kind: "track", Params: append([]param.Parameter{
		param.Tagged("A", 400.0, vocab.TypeNumber, vocab.TagClothoidParameter, units.None),
	}, params...)}
	e, err := testFactory().Build(desc)
	require.NoError(t, err)
	ct, err := AsCurvedTrack(e)
	require.NoError(t, err)
	return ct
}

func TestCurvedTrackRadii(t *testing.T) {
	ct := curvedTrack(t,
		numParam(vocab.TagRadiusStart, 300),
		numParam(vocab.TagRadiusEnd, 450),
	)

	start := ct.StartRadius()
	assert.False(t, start.Straight)
	assert.Equal(t, 300.0, start.Value)

	end := ct.EndRadius()
	assert.False(t, end.Straight)
	assert.Equal(t, 450.0, end.Value)

	a, ok := ct.ClothoidParameter()
	require.True(t, ok)
	assert.Equal(t, 400.0, a)
}

func TestCurvedTrackStraightIsExplicit(t *testing.T) {
	// An absent radius means straight, not zero.
	ct := curvedTrack(t)
	assert.True(t, ct.StartRadius().Straight)
	assert.Zero(t, ct.StartRadius().Value)

	// Legacy infinity sentinels normalize to the same representation.
	inf := param.Tagged("R1", math.Inf(1), vocab.TypeNumber, vocab.TagRadiusStart, units.Meter)
	require.NoError(t, ct.SetParam(inf))
	assert.True(t, ct.StartRadius().Straight)
}

func TestAsCurvedTrackRejectsOtherKinds(t *testing.T) {
	e := New("e-1", "plain", KindTrack, "")
	_, err := AsCurvedTrack(e)
	assert.Error(t, err)
}
