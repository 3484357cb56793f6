package elgamal

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/sync/errgroup"
)

// CiphertextVector is a slice of ciphertexts under one key, encrypted and
// decrypted element-wise.
type CiphertextVector []*Ciphertext

// EncryptVector encrypts messages[i] with randomness[i] for every i, in
// parallel. The randomness scalars must be independent and single-use, the
// same obligation as for Encrypt.
func EncryptVector(pk *PublicKey, messages []group.Point, randomness []group.Scalar) (CiphertextVector, error) {
	if len(messages) != len(randomness) {
		return nil, fmt.Errorf("elgamal: %d messages but %d randomness scalars", len(messages), len(randomness))
	}
	out := make(CiphertextVector, len(messages))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range messages {
		i := i
		g.Go(func() error {
			out[i] = pk.Encrypt(messages[i], randomness[i])
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}

// DecryptVector decrypts every element of the vector in parallel.
func DecryptVector(sk *SecretKey, cts CiphertextVector) []group.Point {
	out := make([]group.Point, len(cts))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range cts {
		i := i
		g.Go(func() error {
			out[i] = sk.Decrypt(cts[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// MarshalBinary encodes the vector as a CBOR array of the fixed-size
// per-ciphertext encodings.
func (cts CiphertextVector) MarshalBinary() ([]byte, error) {
	elements := make([][]byte, len(cts))
	for i, ct := range cts {
		data, err := ct.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("elgamal: encode ciphertext %d: %w", i, err)
		}
		elements[i] = data
	}
	return cbor.Marshal(elements)
}

// UnmarshalCiphertextVector decodes a CBOR array of ciphertexts over the
// given group.
func UnmarshalCiphertextVector(g group.Group, data []byte) (CiphertextVector, error) {
	if g == nil {
		return nil, errors.New("elgamal: ciphertext vector needs a group to decode into")
	}
	var elements [][]byte
	if err := cbor.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("elgamal: decode ciphertext vector: %w", err)
	}
	out := make(CiphertextVector, len(elements))
	for i, element := range elements {
		ct := EmptyCiphertext(g)
		if err := ct.UnmarshalBinary(element); err != nil {
			return nil, fmt.Errorf("elgamal: decode ciphertext %d: %w", i, err)
		}
		out[i] = ct
	}
	return out, nil
}
