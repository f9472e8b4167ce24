// Package keypair implements Ed25519 key pairs for Stellar accounts:
// derivation from StrKey-encoded or raw seeds, optional nonce mixing,
// message signing and signature verification.
//
// A KP is one of two variants. *Full holds the seed and the expanded
// secret key and can sign; *FromAddress carries only the public key and
// can merely verify. Whether an instance can sign is a property of its
// type, not a runtime state.
//
// Two nonce-mixing schemes exist and are deliberately kept apart:
// FromSeedWithNonce adds the nonce byte-wise into the seed, while
// FromMasterSecret chains seed and nonce through SHA-512. The two
// produce unrelated keys for the same inputs.
package keypair
