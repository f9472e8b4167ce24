package keypair

import "github.com/nazgull08/stellar-sdk-adv/strkey"

// FromAddress is the public-only keypair variant. It never holds secret
// material and cannot sign.
type FromAddress struct {
	public [PublicKeySize]byte
}

// Address returns the StrKey-encoded public key.
func (fa *FromAddress) Address() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, fa.public[:])
}

// Hint returns the last four bytes of the public key.
func (fa *FromAddress) Hint() (h [4]byte) {
	copy(h[:], fa.public[PublicKeySize-len(h):])
	return h
}

// RawPublicKey returns a copy of the raw public key bytes.
func (fa *FromAddress) RawPublicKey() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, fa.public[:])
	return out
}

// CanSign always reports false.
func (fa *FromAddress) CanSign() bool {
	return false
}

// Sign always fails with ErrCannotSign.
func (fa *FromAddress) Sign([]byte) ([]byte, error) {
	return nil, ErrCannotSign
}

// Verify reports whether sig is a valid signature of msg.
func (fa *FromAddress) Verify(msg, sig []byte) bool {
	return verifyDetached(fa.public[:], msg, sig)
}
