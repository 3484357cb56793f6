// Package zksch implements a Schnorr proof of knowledge of the secret key
// behind an ElGamal public key, made non-interactive with Fiat-Shamir.
//
// The statement is (g, X) with X = x⋅g for a caller-chosen generator g,
// and the witness is x.
package zksch

import (
	"io"

	"github.com/AlvinHon/bls-elgamal/pkg/hash"
	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
)

type Proof struct {
	// A = a⋅g is the commitment to the proof randomness a.
	A group.Point
	// Z = a + e⋅x
	Z group.Scalar
}

func challenge(h *hash.Hash, g, X, A group.Point) group.Scalar {
	_ = h.WriteAny(g, X, A)
	return sample.Scalar(h.Digest(), g.Group())
}

// Prove proves knowledge of x such that X = x⋅g. The proof randomness is
// sampled from rand.
func Prove(h *hash.Hash, g, X group.Point, x group.Scalar, rand io.Reader) *Proof {
	a := sample.Scalar(rand, g.Group())
	A := a.Act(g)
	e := challenge(h, g, X, A)
	return &Proof{
		A: A,
		Z: a.Add(e.Mul(x)),
	}
}

// Verify checks that z⋅g == A + e⋅X.
func (p *Proof) Verify(h *hash.Hash, g, X group.Point) bool {
	if p == nil || p.A == nil || p.Z == nil {
		return false
	}
	if X.IsIdentity() || p.A.IsIdentity() {
		return false
	}

	e := challenge(h, g, X, p.A)

	lhs := p.Z.Act(g)
	rhs := p.A.Add(e.Act(X))
	return lhs.Equal(rhs)
}
