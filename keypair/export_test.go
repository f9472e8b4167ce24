package keypair

// Hooks for the external test package.
var (
	DeriveKey      = deriveKey
	MixNonce       = mixNonce
	MasterSeed     = masterSeed
	SignDetached   = signDetached
	VerifyDetached = verifyDetached
)

// SecretBuffers exposes the internal buffers so tests can assert that
// Wipe cleared them.
func (f *Full) SecretBuffers() (seed, secret []byte) {
	return f.seed[:], f.secret[:]
}
