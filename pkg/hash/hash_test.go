package hash

import (
	"crypto/rand"
	"testing"

	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDeterministic(t *testing.T) {
	h1 := New()
	require.NoError(t, h1.WriteAny([]byte("hello")))
	h2 := New()
	require.NoError(t, h2.WriteAny([]byte("hello")))
	assert.Equal(t, h1.Sum(), h2.Sum())
	assert.Len(t, h1.Sum(), DigestLengthBytes)
}

func TestDomainSeparation(t *testing.T) {
	h1 := New()
	require.NoError(t, h1.WriteAny([]byte("payload")))
	h2 := New()
	require.NoError(t, h2.WriteAny(BytesWithDomain{TheDomain: "other", Bytes: []byte("payload")}))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestWriteGroupTypes(t *testing.T) {
	g := group.BN256G1{}
	s, p := sample.ScalarPointPair(rand.Reader, g)

	h1 := New()
	require.NoError(t, h1.WriteAny(p, s))
	h2 := New()
	require.NoError(t, h2.WriteAny(p, s))
	assert.Equal(t, h1.Sum(), h2.Sum())

	h3 := New()
	require.NoError(t, h3.WriteAny(p))
	assert.NotEqual(t, h1.Sum(), h3.Sum())
}

func TestClone(t *testing.T) {
	h := New()
	require.NoError(t, h.WriteAny([]byte("prefix")))
	clone := h.Clone()
	require.NoError(t, clone.WriteAny([]byte("suffix")))
	assert.NotEqual(t, h.Sum(), clone.Sum())

	// The original state is unaffected by writes to the clone.
	fresh := New()
	require.NoError(t, fresh.WriteAny([]byte("prefix")))
	assert.Equal(t, fresh.Sum(), h.Sum())
}
