package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/AlvinHon/bls-elgamal/pkg/elgamal"
	"github.com/AlvinHon/bls-elgamal/pkg/hash"
	"github.com/AlvinHon/bls-elgamal/pkg/math/group"
	"github.com/AlvinHon/bls-elgamal/pkg/math/sample"
	zkenc "github.com/AlvinHon/bls-elgamal/pkg/zk/enc"
	zksch "github.com/AlvinHon/bls-elgamal/pkg/zk/sch"
)

func main() {
	g := group.BN256G1{}

	// The generator may be any agreed-upon group element; here the
	// canonical base point of G1.
	sk := elgamal.GenerateKey(rand.Reader, g.NewBasePoint())
	pk := sk.PublicKey()

	fp, err := pk.Fingerprint()
	if err != nil {
		panic(err)
	}
	fmt.Println("public key fingerprint:", hex.EncodeToString(fp))

	// Encrypt a random message point. The ephemeral scalar r must be
	// uniform and used exactly once.
	m := sample.Point(rand.Reader, g)
	r := sample.Scalar(rand.Reader, g)
	ct := pk.Encrypt(m, r)

	// Prove that ct really encrypts m, without revealing r.
	proof := zkenc.Prove(hash.New(), pk, ct, m, r, rand.Reader)
	fmt.Println("encryption proof verifies:", proof.Verify(hash.New(), pk, ct, m))

	// Rerandomize: same plaintext, unlinkable ciphertext.
	ct2 := pk.Rerandomize(ct, sample.Scalar(rand.Reader, g))
	fmt.Println("rerandomized ciphertext differs:", !ct.Equal(ct2))
	fmt.Println("decrypts to the original message:", sk.Decrypt(ct2).Equal(m))

	// Prove knowledge of the secret key behind pk.
	keyProof := zksch.Prove(hash.New(), pk.Generator(), pk.PublicPoint(), sk.Secret(), rand.Reader)
	fmt.Println("key proof verifies:", keyProof.Verify(hash.New(), pk.Generator(), pk.PublicPoint()))

	// Ship the ciphertext over the wire and back.
	data, err := ct2.MarshalBinary()
	if err != nil {
		panic(err)
	}
	decoded := elgamal.EmptyCiphertext(g)
	if err := decoded.UnmarshalBinary(data); err != nil {
		panic(err)
	}
	fmt.Println("round-tripped ciphertext:", decoded.Equal(ct2))
}
