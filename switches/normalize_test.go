package switches

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAppendsMissingFlags(t *testing.T) {
	buf, err := Normalize("pq1.4", true)
	require.NoError(t, err)

	require.NotEmpty(t, buf)
	assert.Equal(t, byte(0), buf[len(buf)-1])
	assert.Equal(t, "pq1.4nf", SwitchString(buf))
}

func TestNormalizePreservesExistingFlags(t *testing.T) {
	buf, err := Normalize("pnfq1.4", true)
	require.NoError(t, err)
	assert.Equal(t, "pnfq1.4", SwitchString(buf))

	buf, err = Normalize("pfq1.4", true)
	require.NoError(t, err)
	assert.Equal(t, "pfq1.4n", SwitchString(buf))
}

func TestNormalizeWithoutDerivation(t *testing.T) {
	buf, err := Normalize("pq1.4", false)
	require.NoError(t, err)
	assert.Equal(t, "pq1.4", SwitchString(buf))
	assert.Equal(t, byte(0), buf[len(buf)-1])
}

func TestNormalizeAcceptedKinds(t *testing.T) {
	buf, err := Normalize([]byte("pz"), true)
	require.NoError(t, err)
	assert.Equal(t, "pznf", SwitchString(buf))

	p := DefaultParams()
	p.RadiusEdgeRatio = 2
	buf, err = Normalize(p, true)
	require.NoError(t, err)
	assert.Equal(t, "pq2nf", SwitchString(buf))

	buf, err = Normalize(&p, false)
	require.NoError(t, err)
	assert.Equal(t, "pq2", SwitchString(buf))
}

func TestNormalizeRejectsOtherKinds(t *testing.T) {
	_, err := Normalize(42, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "string, []byte, or Params")

	_, err = Normalize(nil, true)
	require.Error(t, err)

	var pp *Params
	_, err = Normalize(pp, true)
	require.Error(t, err)
}

func TestNormalizeStripsEmbeddedNUL(t *testing.T) {
	buf, err := Normalize([]byte{'p', 0}, true)
	require.NoError(t, err)
	assert.Equal(t, "pnf", SwitchString(buf))
}

func TestNormalizePropagatesBuildErrors(t *testing.T) {
	p := DefaultParams()
	p.Quiet = true
	p.Verbose = true
	_, err := Normalize(p, true)
	require.Error(t, err)
}
