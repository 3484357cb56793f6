// Package group abstracts the prime-order group the encryption scheme is
// instantiated over.
//
// The scheme itself only needs a handful of capabilities: sampling, point
// addition and negation, scalar multiplication, equality, and a canonical
// fixed-size byte encoding with validity checking on decode. Everything is
// expressed against the three interfaces below so the concrete curve is a
// substitutable parameter rather than a hardwired dependency.
package group

import (
	"encoding"

	"github.com/cronokirby/saferith"
)

// Group describes a cyclic group of prime order.
type Group interface {
	// NewPoint returns the identity element.
	NewPoint() Point
	// NewBasePoint returns the canonical generator.
	NewBasePoint() Point
	// NewScalar returns the zero scalar.
	NewScalar() Scalar
	Name() string
	// ScalarBytes is the length of a marshalled scalar.
	ScalarBytes() int
	// PointBytes is the length of a marshalled point.
	PointBytes() int
	Order() *saferith.Modulus
}

// Scalar is an element of the group's exponent field, i.e. an integer
// modulo the group order.
//
// Arithmetic methods return fresh values and leave the receiver untouched.
// Set, SetNat and UnmarshalBinary are the in-place initializers.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Group() Group
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Invert() Scalar
	Equal(Scalar) bool
	IsZero() bool
	Set(Scalar) Scalar
	// SetNat sets the scalar to n mod q.
	SetNat(*saferith.Nat) Scalar
	// Act returns the scalar multiplication of p by the receiver.
	Act(p Point) Point
	// ActOnBase returns the scalar multiplication of the canonical
	// generator by the receiver.
	ActOnBase() Point
}

// Point is a group element.
//
// Arithmetic methods return fresh values and leave the receiver untouched.
// Set and UnmarshalBinary are the in-place initializers.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Group() Group
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	Set(Point) Point
	Equal(Point) bool
	IsIdentity() bool
}

// FromHash converts hash output to a Scalar.
//
// The excess bits beyond the bit length of the group order are discarded,
// mirroring what crypto/ecdsa does when deriving a scalar from a digest.
func FromHash(g Group, h []byte) Scalar {
	order := g.Order()
	orderBits := order.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(h) > orderBytes {
		h = h[:orderBytes]
	}
	s := new(saferith.Nat).SetBytes(h)
	excess := len(h)*8 - orderBits
	if excess > 0 {
		s.Rsh(s, uint(excess), -1)
	}
	return g.NewScalar().SetNat(s)
}
