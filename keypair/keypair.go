package keypair

import (
	"crypto/rand"
	"fmt"

	"github.com/nazgull08/stellar-sdk-adv/internal/util/memzero"
	"github.com/nazgull08/stellar-sdk-adv/strkey"
)

// KP is the read-only surface shared by both keypair variants.
type KP interface {
	// Address returns the StrKey-encoded public key.
	Address() string
	// Hint returns the last four bytes of the public key, used to
	// identify which key produced a signature.
	Hint() [4]byte
	// RawPublicKey returns a copy of the 32 raw public key bytes.
	RawPublicKey() []byte
	// CanSign reports whether the instance holds usable secret material.
	CanSign() bool
	// Sign signs msg, or fails with ErrCannotSign on a public-only or
	// wiped instance.
	Sign(msg []byte) ([]byte, error)
	// Verify reports whether sig is a valid signature of msg under the
	// instance's public key.
	Verify(msg, sig []byte) bool
}

// FromSeed builds a signing keypair from a StrKey-encoded secret seed.
func FromSeed(seed string) (*Full, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	return FromRawSeed(raw)
}

// FromSeedWithNonce builds a signing keypair from a StrKey-encoded
// secret seed after mixing nonce into it byte-wise.
func FromSeedWithNonce(seed string, nonce []byte) (*Full, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	return FromRawSeedWithNonce(raw, nonce)
}

// FromMasterSecret builds a signing keypair from a StrKey-encoded
// secret seed and a text nonce, chained through SHA-512. The resulting
// seed is unrelated to the one FromSeedWithNonce yields for the same
// inputs.
func FromMasterSecret(seed, nonce string) (*Full, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)

	var s [SeedSize]byte
	copy(s[:], raw)
	mixed := masterSeed(s, []byte(nonce))
	memzero.Zero(s[:])
	return newFull(mixed), nil
}

// FromRawSeed builds a signing keypair from 32 raw seed bytes.
func FromRawSeed(seed []byte) (*Full, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes", ErrInvalidLength, len(seed))
	}
	var s [SeedSize]byte
	copy(s[:], seed)
	return newFull(s), nil
}

// FromRawSeedWithNonce builds a signing keypair from 32 raw seed bytes
// after mixing nonce into them byte-wise. Nonces longer than the seed
// fail with ErrNonceTooLong.
func FromRawSeedWithNonce(seed, nonce []byte) (*Full, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes", ErrInvalidLength, len(seed))
	}
	if len(nonce) > MaxNonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes", ErrNonceTooLong, len(nonce))
	}
	var s [SeedSize]byte
	copy(s[:], seed)
	mixed := mixNonce(s, nonce)
	memzero.Zero(s[:])
	return newFull(mixed), nil
}

// ParseAddress builds a public-only keypair from a StrKey-encoded
// account address.
func ParseAddress(address string) (*FromAddress, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return nil, err
	}
	fa := &FromAddress{}
	copy(fa.public[:], raw)
	return fa, nil
}

// Parse accepts either an account address or a secret seed and returns
// the matching variant.
func Parse(addressOrSeed string) (KP, error) {
	if kp, err := ParseAddress(addressOrSeed); err == nil {
		return kp, nil
	}
	if kp, err := FromSeed(addressOrSeed); err == nil {
		return kp, nil
	}
	return nil, ErrInvalidKey
}

// Random builds a signing keypair from a fresh CSPRNG seed.
func Random() (*Full, error) {
	var seed [SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("keypair: read random seed: %w", err)
	}
	return newFull(seed), nil
}
