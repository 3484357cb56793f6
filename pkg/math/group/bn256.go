package group

import (
	"encoding/hex"
	"fmt"

	"github.com/cronokirby/saferith"
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing/bn256"
)

// BN256G1 is the G1 group of the bn256 pairing-friendly curve.
//
// This is the primary instantiation of the scheme: 32 byte scalars, and
// 64 byte uncompressed affine points.
type BN256G1 struct{}

var (
	bn256g1    kyber.Group
	bn256Order *saferith.Modulus
)

func init() {
	bn256g1 = bn256.NewSuite().G1()
	// The prime order of G1.
	orderBytes, err := hex.DecodeString("30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")
	if err != nil {
		panic(err)
	}
	bn256Order = saferith.ModulusFromBytes(orderBytes)
}

func (BN256G1) NewPoint() Point {
	return &bn256Point{value: bn256g1.Point().Null()}
}

func (BN256G1) NewBasePoint() Point {
	return &bn256Point{value: bn256g1.Point().Base()}
}

func (BN256G1) NewScalar() Scalar {
	return &bn256Scalar{value: bn256g1.Scalar().Zero()}
}

func (BN256G1) Name() string {
	return "bn256.G1"
}

func (BN256G1) ScalarBytes() int {
	return bn256g1.ScalarLen()
}

func (BN256G1) PointBytes() int {
	return bn256g1.PointLen()
}

func (BN256G1) Order() *saferith.Modulus {
	return bn256Order
}

type bn256Scalar struct {
	value kyber.Scalar
}

func bn256CastScalar(generic Scalar) *bn256Scalar {
	out, ok := generic.(*bn256Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to bn256Scalar: %v", generic))
	}
	return out
}

func (s *bn256Scalar) MarshalBinary() ([]byte, error) {
	return s.value.MarshalBinary()
}

func (s *bn256Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != bn256g1.ScalarLen() {
		return fmt.Errorf("invalid length for bn256 scalar: %d", len(data))
	}
	if err := s.value.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("invalid bytes for bn256 scalar: %w", err)
	}
	return nil
}

func (s *bn256Scalar) Group() Group {
	return BN256G1{}
}

func (s *bn256Scalar) Add(that Scalar) Scalar {
	other := bn256CastScalar(that)
	return &bn256Scalar{value: bn256g1.Scalar().Add(s.value, other.value)}
}

func (s *bn256Scalar) Sub(that Scalar) Scalar {
	other := bn256CastScalar(that)
	return &bn256Scalar{value: bn256g1.Scalar().Sub(s.value, other.value)}
}

func (s *bn256Scalar) Negate() Scalar {
	return &bn256Scalar{value: bn256g1.Scalar().Neg(s.value)}
}

func (s *bn256Scalar) Mul(that Scalar) Scalar {
	other := bn256CastScalar(that)
	return &bn256Scalar{value: bn256g1.Scalar().Mul(s.value, other.value)}
}

func (s *bn256Scalar) Invert() Scalar {
	return &bn256Scalar{value: bn256g1.Scalar().Inv(s.value)}
}

func (s *bn256Scalar) Equal(that Scalar) bool {
	other := bn256CastScalar(that)
	return s.value.Equal(other.value)
}

func (s *bn256Scalar) IsZero() bool {
	return s.value.Equal(bn256g1.Scalar().Zero())
}

func (s *bn256Scalar) Set(that Scalar) Scalar {
	other := bn256CastScalar(that)
	s.value.Set(other.value)
	return s
}

func (s *bn256Scalar) SetNat(x *saferith.Nat) Scalar {
	s.value.SetBytes(x.Bytes())
	return s
}

func (s *bn256Scalar) Act(that Point) Point {
	other := bn256CastPoint(that)
	return &bn256Point{value: bn256g1.Point().Mul(s.value, other.value)}
}

func (s *bn256Scalar) ActOnBase() Point {
	return &bn256Point{value: bn256g1.Point().Mul(s.value, nil)}
}

type bn256Point struct {
	value kyber.Point
}

func bn256CastPoint(generic Point) *bn256Point {
	out, ok := generic.(*bn256Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to bn256Point: %v", generic))
	}
	return out
}

func (p *bn256Point) MarshalBinary() ([]byte, error) {
	return p.value.MarshalBinary()
}

func (p *bn256Point) UnmarshalBinary(data []byte) error {
	if len(data) != bn256g1.PointLen() {
		return fmt.Errorf("invalid length for bn256 G1 point: %d", len(data))
	}
	if err := p.value.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("invalid bytes for bn256 G1 point: %w", err)
	}
	return nil
}

func (p *bn256Point) Group() Group {
	return BN256G1{}
}

func (p *bn256Point) Add(that Point) Point {
	other := bn256CastPoint(that)
	return &bn256Point{value: bn256g1.Point().Add(p.value, other.value)}
}

func (p *bn256Point) Sub(that Point) Point {
	other := bn256CastPoint(that)
	return &bn256Point{value: bn256g1.Point().Sub(p.value, other.value)}
}

func (p *bn256Point) Negate() Point {
	return &bn256Point{value: bn256g1.Point().Neg(p.value)}
}

func (p *bn256Point) Set(that Point) Point {
	other := bn256CastPoint(that)
	p.value.Set(other.value)
	return p
}

func (p *bn256Point) Equal(that Point) bool {
	other := bn256CastPoint(that)
	return p.value.Equal(other.value)
}

func (p *bn256Point) IsIdentity() bool {
	return p.value.Equal(bn256g1.Point().Null())
}
