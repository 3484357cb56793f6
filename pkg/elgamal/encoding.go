package elgamal

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
)

// ErrInvalidLength is returned when decoding bytes whose length does not
// match the fixed encoded size of the target type.
var ErrInvalidLength = errors.New("elgamal: invalid encoding length")

// EmptySecretKey returns a secret key with identity components over the
// given group, ready for unmarshalling.
//
// The encoded form carries no type or curve tags, so the decoder has to be
// told which group the bytes belong to.
func EmptySecretKey(g group.Group) *SecretKey {
	return &SecretKey{g: g.NewPoint(), x: g.NewScalar()}
}

// EmptyPublicKey returns a public key with identity components over the
// given group, ready for unmarshalling.
func EmptyPublicKey(g group.Group) *PublicKey {
	return &PublicKey{g: g.NewPoint(), h: g.NewPoint()}
}

// EmptyCiphertext returns a ciphertext with identity components over the
// given group, ready for unmarshalling.
func EmptyCiphertext(g group.Group) *Ciphertext {
	return &Ciphertext{C1: g.NewPoint(), C2: g.NewPoint()}
}

// MarshalBinary encodes the secret key as g ∥ x.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	gBytes, err := sk.g.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("elgamal: encode generator: %w", err)
	}
	xBytes, err := sk.x.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("elgamal: encode secret: %w", err)
	}
	return append(gBytes, xBytes...), nil
}

// UnmarshalBinary decodes g ∥ x. The receiver must have been initialized
// with EmptySecretKey, otherwise the group of the bytes is unknown.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	if sk.g == nil || sk.x == nil {
		return errors.New("elgamal: secret key must be initialized using EmptySecretKey")
	}
	pb := sk.g.Group().PointBytes()
	sb := sk.g.Group().ScalarBytes()
	if len(data) != pb+sb {
		return fmt.Errorf("elgamal: decode secret key: %w", ErrInvalidLength)
	}
	if err := sk.g.UnmarshalBinary(data[:pb]); err != nil {
		return fmt.Errorf("elgamal: decode generator: %w", err)
	}
	if err := sk.x.UnmarshalBinary(data[pb:]); err != nil {
		return fmt.Errorf("elgamal: decode secret: %w", err)
	}
	return nil
}

// MarshalBinary encodes the public key as g ∥ h.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	gBytes, err := pk.g.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("elgamal: encode generator: %w", err)
	}
	hBytes, err := pk.h.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("elgamal: encode public point: %w", err)
	}
	return append(gBytes, hBytes...), nil
}

// UnmarshalBinary decodes g ∥ h. The receiver must have been initialized
// with EmptyPublicKey.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if pk.g == nil || pk.h == nil {
		return errors.New("elgamal: public key must be initialized using EmptyPublicKey")
	}
	pb := pk.g.Group().PointBytes()
	if len(data) != 2*pb {
		return fmt.Errorf("elgamal: decode public key: %w", ErrInvalidLength)
	}
	if err := pk.g.UnmarshalBinary(data[:pb]); err != nil {
		return fmt.Errorf("elgamal: decode generator: %w", err)
	}
	if err := pk.h.UnmarshalBinary(data[pb:]); err != nil {
		return fmt.Errorf("elgamal: decode public point: %w", err)
	}
	return nil
}

// MarshalBinary encodes the ciphertext as c1 ∥ c2.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	c1Bytes, err := ct.C1.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("elgamal: encode c1: %w", err)
	}
	c2Bytes, err := ct.C2.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("elgamal: encode c2: %w", err)
	}
	return append(c1Bytes, c2Bytes...), nil
}

// UnmarshalBinary decodes c1 ∥ c2. The receiver must have been initialized
// with EmptyCiphertext.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	if ct.C1 == nil || ct.C2 == nil {
		return errors.New("elgamal: ciphertext must be initialized using EmptyCiphertext")
	}
	pb := ct.C1.Group().PointBytes()
	if len(data) != 2*pb {
		return fmt.Errorf("elgamal: decode ciphertext: %w", ErrInvalidLength)
	}
	if err := ct.C1.UnmarshalBinary(data[:pb]); err != nil {
		return fmt.Errorf("elgamal: decode c1: %w", err)
	}
	if err := ct.C2.UnmarshalBinary(data[pb:]); err != nil {
		return fmt.Errorf("elgamal: decode c2: %w", err)
	}
	return nil
}

// WriteTo implements io.WriterTo, writing c1 ∥ c2.
func (ct *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	data, err := ct.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (Ciphertext) Domain() string {
	return "ElGamal Ciphertext"
}

// WriteTo implements io.WriterTo, writing g ∥ h.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	data, err := pk.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (PublicKey) Domain() string {
	return "ElGamal PublicKey"
}
