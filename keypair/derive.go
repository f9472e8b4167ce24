package keypair

import (
	"crypto/ed25519"
	"crypto/sha512"

	"github.com/nazgull08/stellar-sdk-adv/internal/util/memzero"
)

const (
	// SeedSize is the raw seed length in bytes.
	SeedSize = 32
	// PublicKeySize is the raw public key length in bytes.
	PublicKeySize = 32
	// SecretKeySize is the expanded secret length in bytes: seed
	// followed by the derived public key.
	SecretKeySize = SeedSize + PublicKeySize
	// MaxNonceSize bounds the additive nonce to the seed length.
	MaxNonceSize = SeedSize
)

// deriveKey runs the standard Ed25519 seed expansion and returns the
// public key plus the expanded secret (seed ‖ public key).
func deriveKey(seed [SeedSize]byte) (public [PublicKeySize]byte, secret [SecretKeySize]byte) {
	priv := ed25519.NewKeyFromSeed(seed[:])
	copy(public[:], priv[ed25519.SeedSize:])
	copy(secret[:SeedSize], seed[:])
	copy(secret[SeedSize:], public[:])
	memzero.Zero(priv)
	return public, secret
}

// mixNonce adds nonce into seed byte-wise, modulo 256. The caller must
// have bounded len(nonce) to MaxNonceSize.
func mixNonce(seed [SeedSize]byte, nonce []byte) [SeedSize]byte {
	mixed := seed
	for i, n := range nonce {
		mixed[i] += n
	}
	return mixed
}

// masterSeed derives a fresh seed as SHA-512(seed ‖ nonce) truncated to
// 32 bytes.
func masterSeed(seed [SeedSize]byte, nonce []byte) [SeedSize]byte {
	h := sha512.New()
	h.Write(seed[:])
	h.Write(nonce)
	sum := h.Sum(nil)
	var mixed [SeedSize]byte
	copy(mixed[:], sum[:SeedSize])
	memzero.Zero(sum)
	return mixed
}
