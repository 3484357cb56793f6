// Package zkenc implements a Chaum-Pedersen proof that a ciphertext is a
// correct ElGamal encryption of a known message, made non-interactive with
// Fiat-Shamir.
//
// The statement is (pk, ct, m) and the witness is the encryption
// randomness r, i.e. the proof shows log_g(c1) = log_h(c2 − m) = r.
package zkenc

import (
	"io"

	"github.com/AlvinHon/bls-elgamal/pkg/elgamal"
	"github.com/AlvinHon/bls-elgamal/pkg/hash"
	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
)

type Proof struct {
	// A1 = a⋅g, A2 = a⋅h commit to the proof randomness a.
	A1, A2 group.Point
	// Z = a + e⋅r
	Z group.Scalar
}

func challenge(h *hash.Hash, pk *elgamal.PublicKey, ct *elgamal.Ciphertext, m, A1, A2 group.Point) group.Scalar {
	_ = h.WriteAny(pk, ct, m, A1, A2)
	return sample.Scalar(h.Digest(), m.Group())
}

// Prove proves that ct encrypts m under pk with randomness r. The proof
// randomness is sampled from rand.
func Prove(h *hash.Hash, pk *elgamal.PublicKey, ct *elgamal.Ciphertext, m group.Point, r group.Scalar, rand io.Reader) *Proof {
	a := sample.Scalar(rand, m.Group())
	A1 := a.Act(pk.Generator())
	A2 := a.Act(pk.PublicPoint())
	e := challenge(h, pk, ct, m, A1, A2)
	return &Proof{
		A1: A1,
		A2: A2,
		Z:  a.Add(e.Mul(r)),
	}
}

// Verify checks that z⋅g == A1 + e⋅c1 and z⋅h == A2 + e⋅(c2 − m).
func (p *Proof) Verify(h *hash.Hash, pk *elgamal.PublicKey, ct *elgamal.Ciphertext, m group.Point) bool {
	if p == nil || p.A1 == nil || p.A2 == nil || p.Z == nil {
		return false
	}
	if !ct.Valid() {
		return false
	}

	e := challenge(h, pk, ct, m, p.A1, p.A2)

	if !p.Z.Act(pk.Generator()).Equal(p.A1.Add(e.Act(ct.C1))) {
		return false
	}
	return p.Z.Act(pk.PublicPoint()).Equal(p.A2.Add(e.Act(ct.C2.Sub(m))))
}
