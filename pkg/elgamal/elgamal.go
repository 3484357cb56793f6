// Package elgamal implements ElGamal encryption of group elements over a
// prime-order group, primarily the G1 group of the bn256 pairing-friendly
// curve.
//
// A secret key is a generator g and a scalar x, the matching public key is
// (g, h) with h = x⋅g. Encrypting a message point m with randomness r
// produces the pair (r⋅g, m + r⋅h), and decryption recovers m by
// subtracting x⋅c1 from c2.
//
// All randomness is supplied by the caller. In particular the ephemeral
// scalar r passed to Encrypt MUST be sampled uniformly and used exactly
// once: reusing r across two encryptions under the same key, or using a
// predictable r, lets an observer link the ciphertexts and breaks
// confidentiality entirely.
package elgamal

import (
	"io"

	"github.com/AlvinHon/bls-elgamal/pkg/hash"
	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
	"golang.org/x/crypto/sha3"
)

// SecretKey holds the generator g and the secret scalar x.
//
// The key performs no validation of x: the caller is responsible for
// sampling it uniformly, either directly or through GenerateKey.
type SecretKey struct {
	g group.Point
	x group.Scalar
}

// NewSecretKey constructs a secret key from a generator and a secret scalar.
//
// The generator may be any group element agreed upon out of band, it does
// not have to be the group's canonical base point.
func NewSecretKey(g group.Point, x group.Scalar) *SecretKey {
	return &SecretKey{g: g, x: x}
}

// GenerateKey samples a uniform secret scalar from rand and returns the
// secret key over the given generator.
func GenerateKey(rand io.Reader, g group.Point) *SecretKey {
	return NewSecretKey(g, sample.Scalar(rand, g.Group()))
}

// PublicKey derives the public key (g, h) with h = x⋅g.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{g: sk.g, h: sk.x.Act(sk.g)}
}

// Decrypt recovers the message point as c2 − x⋅c1.
//
// Decryption never fails: with the secret key matching the public key used
// at encryption time it returns the original message exactly, and with any
// other key it returns a well-formed but unrelated point. Callers that need
// to detect a key mismatch must layer an integrity check on top.
func (sk *SecretKey) Decrypt(ct *Ciphertext) group.Point {
	return ct.C2.Sub(sk.x.Act(ct.C1))
}

// Secret returns the secret scalar x, for use as a proof witness.
func (sk *SecretKey) Secret() group.Scalar {
	return sk.x
}

// Equal returns true if both keys hold the same generator and scalar.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.g.Equal(other.g) && sk.x.Equal(other.x)
}

// PublicKey holds the generator g and the public point h = x⋅g. It carries
// no secret material and is safe to share and copy freely.
type PublicKey struct {
	g group.Point
	h group.Point
}

// Generator returns g.
func (pk *PublicKey) Generator() group.Point {
	return pk.g
}

// PublicPoint returns h = x⋅g.
func (pk *PublicKey) PublicPoint() group.Point {
	return pk.h
}

// Encrypt encrypts the message point m with ephemeral randomness r,
// producing the ciphertext (r⋅g, m + r⋅h).
//
// The caller supplies r explicitly, which keeps the operation pure and
// testable, but also places the burden of uniform, single-use randomness
// entirely on the caller. See the package documentation.
func (pk *PublicKey) Encrypt(m group.Point, r group.Scalar) *Ciphertext {
	return &Ciphertext{
		C1: r.Act(pk.g),
		C2: m.Add(r.Act(pk.h)),
	}
}

// Rerandomize maps the ciphertext (c1, c2) to (c1 + r⋅g, c2 + r⋅h), which
// decrypts to the same message but is unlinkable to the original without
// knowledge of r.
func (pk *PublicKey) Rerandomize(ct *Ciphertext, r group.Scalar) *Ciphertext {
	return &Ciphertext{
		C1: ct.C1.Add(r.Act(pk.g)),
		C2: ct.C2.Add(r.Act(pk.h)),
	}
}

// Equal returns true if both keys hold the same generator and public point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.g.Equal(other.g) && pk.h.Equal(other.h)
}

// Fingerprint returns the SHA3-256 digest of the encoded public key,
// usable as a short key identifier. Note that ciphertexts are not bound to
// this identifier in any way, binding them is up to the caller.
func (pk *PublicKey) Fingerprint() ([]byte, error) {
	data, err := pk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	digest := sha3.Sum256(data)
	return digest[:], nil
}

// Ciphertext is the ordered pair (c1, c2) = (r⋅g, m + r⋅h).
type Ciphertext struct {
	C1 group.Point
	C2 group.Point
}

// Equal returns true if both ciphertexts hold the same component points.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.C1.Equal(other.C1) && ct.C2.Equal(other.C2)
}

// Valid returns true if the ciphertext components are present and neither
// is the identity.
func (ct *Ciphertext) Valid() bool {
	if ct == nil || ct.C1 == nil || ct.C1.IsIdentity() ||
		ct.C2 == nil || ct.C2.IsIdentity() {
		return false
	}
	return true
}

var _ hash.WriterToWithDomain = (*Ciphertext)(nil)
var _ hash.WriterToWithDomain = (*PublicKey)(nil)
