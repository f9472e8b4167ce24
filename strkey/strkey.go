package strkey

import (
	"encoding/base32"
	"errors"
	"fmt"
)

// VersionByte tags the payload type carried by an encoded string.
type VersionByte byte

const (
	// VersionByteAccountID marks an Ed25519 public key ("G...").
	VersionByteAccountID VersionByte = 6 << 3
	// VersionByteSeed marks an Ed25519 secret seed ("S...").
	VersionByteSeed VersionByte = 18 << 3
)

const (
	// PayloadSize is the fixed payload length in bytes.
	PayloadSize = 32
	// ChecksumSize is the trailing checksum length in bytes.
	ChecksumSize = 2

	rawSize = 1 + PayloadSize + ChecksumSize
)

var (
	ErrInvalidEncoding    = errors.New("strkey: not a valid unpadded base-32 string")
	ErrInvalidLength      = errors.New("strkey: invalid decoded length")
	ErrInvalidVersionByte = errors.New("strkey: version byte mismatch")
	ErrInvalidChecksum    = errors.New("strkey: checksum mismatch")
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode renders a 32-byte payload as version ‖ payload ‖ checksum in
// unpadded base-32. It fails only when the payload is not 32 bytes.
func Encode(version VersionByte, payload []byte) (string, error) {
	if len(payload) != PayloadSize {
		return "", fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidLength, len(payload), PayloadSize)
	}
	raw := make([]byte, 0, rawSize)
	raw = append(raw, byte(version))
	raw = append(raw, payload...)
	sum := crc16(raw)
	raw = append(raw, byte(sum), byte(sum>>8))
	return encoding.EncodeToString(raw), nil
}

// MustEncode is Encode for payloads whose length is statically known to
// be valid. It panics on error.
func MustEncode(version VersionByte, payload []byte) string {
	s, err := Encode(version, payload)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode parses src, checks its length, version byte and checksum, and
// returns the 32-byte payload.
func Decode(version VersionByte, src string) ([]byte, error) {
	raw, err := encoding.DecodeString(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) != rawSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidLength, len(raw), rawSize)
	}
	if VersionByte(raw[0]) != version {
		return nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrInvalidVersionByte, raw[0], byte(version))
	}
	body := raw[:1+PayloadSize]
	want := uint16(raw[rawSize-2]) | uint16(raw[rawSize-1])<<8
	if crc16(body) != want {
		return nil, ErrInvalidChecksum
	}
	payload := make([]byte, PayloadSize)
	copy(payload, raw[1:1+PayloadSize])
	return payload, nil
}

// IsValidEd25519PublicKey reports whether s decodes as an account ID.
func IsValidEd25519PublicKey(s string) bool {
	_, err := Decode(VersionByteAccountID, s)
	return err == nil
}

// IsValidEd25519SecretSeed reports whether s decodes as a secret seed.
func IsValidEd25519SecretSeed(s string) bool {
	_, err := Decode(VersionByteSeed, s)
	return err == nil
}
