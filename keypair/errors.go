package keypair

import "errors"

var (
	// ErrInvalidLength reports a raw seed or public key that is not
	// exactly 32 bytes.
	ErrInvalidLength = errors.New("keypair: seed or public key must be 32 bytes")

	// ErrNonceTooLong reports an additive nonce longer than the seed.
	ErrNonceTooLong = errors.New("keypair: nonce exceeds 32 bytes")

	// ErrNoSecretKey reports a request for secret material that is no
	// longer available.
	ErrNoSecretKey = errors.New("keypair: no secret seed available")

	// ErrCannotSign reports a signing request on an instance without
	// usable secret material.
	ErrCannotSign = errors.New("keypair: cannot sign without a secret key")

	// ErrSigningFailed reports that the signature primitive rejected
	// its input.
	ErrSigningFailed = errors.New("keypair: signing rejected by the primitive")

	// ErrDerivationFailed reports a key-derivation failure. The current
	// derivation path over fixed-size buffers is total; the sentinel is
	// part of the stable error surface for callers that match on it.
	ErrDerivationFailed = errors.New("keypair: key derivation failed")

	// ErrInvalidKey reports a string that is neither a valid account
	// address nor a valid secret seed.
	ErrInvalidKey = errors.New("keypair: undecodable address or seed")
)
