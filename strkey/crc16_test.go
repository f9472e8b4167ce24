package strkey

import "testing"

func TestCRC16_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint16
	}{
		{"empty", nil, 0x0000},
		{"check string", []byte("123456789"), 0x31C3},
		{"single zero byte", []byte{0x00}, 0x0000},
		{"single 0xFF", []byte{0xFF}, 0x1EF0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := crc16(tc.in); got != tc.want {
				t.Errorf("crc16(%q) = 0x%04X, want 0x%04X", tc.in, got, tc.want)
			}
		})
	}
}

func TestCRC16_AppendZeroChecksumYieldsZero(t *testing.T) {
	// Running the CRC over data plus its own big-endian checksum gives
	// zero; a quick self-consistency check on the polynomial arithmetic.
	data := []byte("strkey")
	sum := crc16(data)
	extended := append(append([]byte(nil), data...), byte(sum>>8), byte(sum))
	if got := crc16(extended); got != 0 {
		t.Errorf("crc16(data ‖ checksum) = 0x%04X, want 0", got)
	}
}
