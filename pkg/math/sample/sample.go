// Package sample implements rejection sampling of scalars and group
// elements from an arbitrary randomness source.
//
// The library itself never owns a random number generator: every function
// here takes the source as an explicit io.Reader, so callers can pass
// crypto/rand.Reader, a deterministic stream for tests, or the digest of a
// hash when deriving Fiat-Shamir challenges.
package sample

import (
	"fmt"
	"io"

	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/cronokirby/saferith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// ModN samples an element of ℤₙ.
func ModN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			break
		}
	}
	return out
}

// Scalar samples a uniform scalar of the given group.
func Scalar(rand io.Reader, g group.Group) group.Scalar {
	return g.NewScalar().SetNat(ModN(rand, g.Order()))
}

// Point samples a uniform element of the given group.
func Point(rand io.Reader, g group.Group) group.Point {
	return Scalar(rand, g).ActOnBase()
}

// ScalarPointPair samples a uniform scalar x, returning (x, x⋅G).
func ScalarPointPair(rand io.Reader, g group.Group) (group.Scalar, group.Point) {
	s := Scalar(rand, g)
	return s, s.ActOnBase()
}
