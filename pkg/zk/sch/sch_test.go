package zksch

import (
	"crypto/rand"
	"testing"

	"github.com/AlvinHon/bls-elgamal/pkg/hash"
	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
	"github.com/stretchr/testify/assert"
)

func testGroups() []group.Group {
	return []group.Group{group.BN256G1{}, group.Secp256k1{}}
}

func TestSchPass(t *testing.T) {
	for _, grp := range testGroups() {
		grp := grp
		t.Run(grp.Name(), func(t *testing.T) {
			g := sample.Point(rand.Reader, grp)
			x := sample.Scalar(rand.Reader, grp)
			X := x.Act(g)

			proof := Prove(hash.New(), g, X, x, rand.Reader)
			assert.True(t, proof.Verify(hash.New(), g, X))
		})
	}
}

func TestSchFailWrongStatement(t *testing.T) {
	grp := group.BN256G1{}
	g := grp.NewBasePoint()
	x := sample.Scalar(rand.Reader, grp)
	X := x.Act(g)

	proof := Prove(hash.New(), g, X, x, rand.Reader)
	other := sample.Point(rand.Reader, grp)
	assert.False(t, proof.Verify(hash.New(), g, other))
}

func TestSchFailIdentity(t *testing.T) {
	grp := group.BN256G1{}
	g := grp.NewBasePoint()
	x := grp.NewScalar()
	X := grp.NewPoint()

	proof := Prove(hash.New(), g, X, x, rand.Reader)
	assert.False(t, proof.Verify(hash.New(), g, X), "proof should not accept identity point")
}

func TestSchFailTamperedProof(t *testing.T) {
	grp := group.Secp256k1{}
	g := grp.NewBasePoint()
	x := sample.Scalar(rand.Reader, grp)
	X := x.Act(g)

	proof := Prove(hash.New(), g, X, x, rand.Reader)
	proof.Z = proof.Z.Add(sample.Scalar(rand.Reader, grp))
	assert.False(t, proof.Verify(hash.New(), g, X))
}
