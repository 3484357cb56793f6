package elgamal

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretKeyRoundTrip(t *testing.T) {
	for _, g := range testGroups() {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			sk := GenerateKey(rand.Reader, sample.Point(rand.Reader, g))
			data, err := sk.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, g.PointBytes()+g.ScalarBytes())

			sk2 := EmptySecretKey(g)
			require.NoError(t, sk2.UnmarshalBinary(data))
			assert.True(t, sk.Equal(sk2))
		})
	}
}

func TestPublicKeyRoundTrip(t *testing.T) {
	for _, g := range testGroups() {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			pk := GenerateKey(rand.Reader, sample.Point(rand.Reader, g)).PublicKey()
			data, err := pk.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, 2*g.PointBytes())

			pk2 := EmptyPublicKey(g)
			require.NoError(t, pk2.UnmarshalBinary(data))
			assert.True(t, pk.Equal(pk2))
		})
	}
}

func TestCiphertextRoundTrip(t *testing.T) {
	for _, g := range testGroups() {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			pk := GenerateKey(rand.Reader, g.NewBasePoint()).PublicKey()
			ct := pk.Encrypt(sample.Point(rand.Reader, g), sample.Scalar(rand.Reader, g))

			data, err := ct.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, 2*g.PointBytes())

			ct2 := EmptyCiphertext(g)
			require.NoError(t, ct2.UnmarshalBinary(data))
			assert.True(t, ct.Equal(ct2))
		})
	}
}

func TestUnmarshalRejectsBadLength(t *testing.T) {
	for _, g := range testGroups() {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			err := EmptySecretKey(g).UnmarshalBinary(make([]byte, 3))
			assert.True(t, errors.Is(err, ErrInvalidLength))

			err = EmptyPublicKey(g).UnmarshalBinary(make([]byte, 2*g.PointBytes()+1))
			assert.True(t, errors.Is(err, ErrInvalidLength))

			err = EmptyCiphertext(g).UnmarshalBinary(nil)
			assert.True(t, errors.Is(err, ErrInvalidLength))
		})
	}
}

func TestUnmarshalRejectsInvalidPoints(t *testing.T) {
	for _, g := range testGroups() {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			garbage := bytes.Repeat([]byte{0xff}, 2*g.PointBytes())
			err := EmptyCiphertext(g).UnmarshalBinary(garbage)
			assert.Error(t, err)
			assert.False(t, errors.Is(err, ErrInvalidLength))

			err = EmptyPublicKey(g).UnmarshalBinary(garbage)
			assert.Error(t, err)
		})
	}
}

func TestUnmarshalRequiresInitializedReceiver(t *testing.T) {
	assert.Error(t, new(SecretKey).UnmarshalBinary(nil))
	assert.Error(t, new(PublicKey).UnmarshalBinary(nil))
	assert.Error(t, new(Ciphertext).UnmarshalBinary(nil))
}

func TestCiphertextWriteTo(t *testing.T) {
	g := group.BN256G1{}
	pk := GenerateKey(rand.Reader, g.NewBasePoint()).PublicKey()
	ct := pk.Encrypt(sample.Point(rand.Reader, g), sample.Scalar(rand.Reader, g))

	buf := bytes.NewBuffer(nil)
	n, err := ct.WriteTo(buf)
	require.NoError(t, err)
	assert.EqualValues(t, 2*g.PointBytes(), n)

	data, err := ct.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, buf.Bytes())
}
