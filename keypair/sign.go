package keypair

import (
	"golang.org/x/crypto/nacl/sign"

	"github.com/nazgull08/stellar-sdk-adv/internal/util/memzero"
)

// SignatureSize is the detached Ed25519 signature length in bytes.
const SignatureSize = sign.Overhead

// signDetached signs msg with a 64-byte expanded secret and returns the
// detached signature.
func signDetached(secret, msg []byte) ([]byte, error) {
	if len(secret) != SecretKeySize {
		return nil, ErrSigningFailed
	}
	var key [SecretKeySize]byte
	copy(key[:], secret)
	defer memzero.Zero(key[:])

	signed := sign.Sign(nil, msg, &key)
	return signed[:SignatureSize], nil
}

// verifyDetached reports whether sig is a valid signature of msg under
// public. Malformed inputs verify as false, never as an error.
func verifyDetached(public, msg, sig []byte) bool {
	if len(public) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	var key [PublicKeySize]byte
	copy(key[:], public)

	signed := make([]byte, 0, len(sig)+len(msg))
	signed = append(signed, sig...)
	signed = append(signed, msg...)
	_, ok := sign.Open(nil, signed, &key)
	return ok
}
