package zkenc

import (
	"crypto/rand"
	"testing"

	"github.com/AlvinHon/bls-elgamal/pkg/elgamal"
	"github.com/AlvinHon/bls-elgamal/pkg/hash"
	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
	"github.com/stretchr/testify/assert"
)

func testGroups() []group.Group {
	return []group.Group{group.BN256G1{}, group.Secp256k1{}}
}

func TestEncPass(t *testing.T) {
	for _, grp := range testGroups() {
		grp := grp
		t.Run(grp.Name(), func(t *testing.T) {
			pk := elgamal.GenerateKey(rand.Reader, grp.NewBasePoint()).PublicKey()
			m := sample.Point(rand.Reader, grp)
			r := sample.Scalar(rand.Reader, grp)
			ct := pk.Encrypt(m, r)

			proof := Prove(hash.New(), pk, ct, m, r, rand.Reader)
			assert.True(t, proof.Verify(hash.New(), pk, ct, m))
		})
	}
}

func TestEncFailWrongMessage(t *testing.T) {
	grp := group.BN256G1{}
	pk := elgamal.GenerateKey(rand.Reader, grp.NewBasePoint()).PublicKey()
	m := sample.Point(rand.Reader, grp)
	r := sample.Scalar(rand.Reader, grp)
	ct := pk.Encrypt(m, r)

	proof := Prove(hash.New(), pk, ct, m, r, rand.Reader)
	other := sample.Point(rand.Reader, grp)
	assert.False(t, proof.Verify(hash.New(), pk, ct, other))
}

func TestEncFailWrongCiphertext(t *testing.T) {
	grp := group.BN256G1{}
	pk := elgamal.GenerateKey(rand.Reader, grp.NewBasePoint()).PublicKey()
	m := sample.Point(rand.Reader, grp)
	r := sample.Scalar(rand.Reader, grp)
	ct := pk.Encrypt(m, r)

	proof := Prove(hash.New(), pk, ct, m, r, rand.Reader)
	ct2 := pk.Rerandomize(ct, sample.Scalar(rand.Reader, grp))
	assert.False(t, proof.Verify(hash.New(), pk, ct2, m))
}

func TestEncFailWrongRandomness(t *testing.T) {
	grp := group.Secp256k1{}
	pk := elgamal.GenerateKey(rand.Reader, grp.NewBasePoint()).PublicKey()
	m := sample.Point(rand.Reader, grp)
	ct := pk.Encrypt(m, sample.Scalar(rand.Reader, grp))

	// A proof built with the wrong witness does not verify.
	wrongR := sample.Scalar(rand.Reader, grp)
	proof := Prove(hash.New(), pk, ct, m, wrongR, rand.Reader)
	assert.False(t, proof.Verify(hash.New(), pk, ct, m))
}
