package keypair

import (
	"github.com/nazgull08/stellar-sdk-adv/internal/util/memzero"
	"github.com/nazgull08/stellar-sdk-adv/strkey"
)

// Full is the secret-holding keypair variant. Instances are immutable
// after construction except for Wipe, which clears the secret buffers
// when the keypair is discarded.
type Full struct {
	public [PublicKeySize]byte
	secret [SecretKeySize]byte
	seed   [SeedSize]byte
	wiped  bool
}

// newFull derives the public key and expanded secret from seed. The
// stored seed is the canonical, possibly nonce-mixed one.
func newFull(seed [SeedSize]byte) *Full {
	public, secret := deriveKey(seed)
	return &Full{public: public, secret: secret, seed: seed}
}

// Address returns the StrKey-encoded public key.
func (f *Full) Address() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, f.public[:])
}

// Hint returns the last four bytes of the public key.
func (f *Full) Hint() (h [4]byte) {
	copy(h[:], f.public[PublicKeySize-len(h):])
	return h
}

// RawPublicKey returns a copy of the raw public key bytes.
func (f *Full) RawPublicKey() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, f.public[:])
	return out
}

// RawSeed returns a copy of the raw seed bytes, or nil after Wipe.
func (f *Full) RawSeed() []byte {
	if f.wiped {
		return nil
	}
	out := make([]byte, SeedSize)
	copy(out, f.seed[:])
	return out
}

// Seed returns the StrKey-encoded secret seed. It fails with
// ErrNoSecretKey after Wipe.
func (f *Full) Seed() (string, error) {
	if f.wiped {
		return "", ErrNoSecretKey
	}
	return strkey.MustEncode(strkey.VersionByteSeed, f.seed[:]), nil
}

// CanSign reports whether the secret material is still available.
func (f *Full) CanSign() bool {
	return !f.wiped
}

// Sign signs msg with the expanded secret key.
func (f *Full) Sign(msg []byte) ([]byte, error) {
	if !f.CanSign() {
		return nil, ErrCannotSign
	}
	return signDetached(f.secret[:], msg)
}

// Verify reports whether sig is a valid signature of msg.
func (f *Full) Verify(msg, sig []byte) bool {
	return verifyDetached(f.public[:], msg, sig)
}

// Wipe clears the seed and expanded secret. The instance keeps its
// public key and can still verify, but no longer signs.
func (f *Full) Wipe() {
	memzero.ZeroAll(f.seed[:], f.secret[:])
	f.wiped = true
}
