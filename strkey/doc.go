// Package strkey implements the StrKey text encoding for Ed25519 key
// material: a version byte, a 32-byte payload and a little-endian
// CRC16-XMODEM checksum, encoded as unpadded upper-case base-32.
//
// Account IDs carry VersionByteAccountID and render with a leading "G";
// secret seeds carry VersionByteSeed and render with a leading "S". The
// two are never interchangeable: Decode rejects a string whose version
// byte does not match the one the caller expects.
//
// The codec is pure and has no dependency on the curve primitives, so it
// can be tested and fuzzed in isolation.
package strkey
