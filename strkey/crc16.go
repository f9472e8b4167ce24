package strkey

// crc16 computes the CRC16-XMODEM checksum of data: polynomial 0x1021,
// zero initial value, no reflection, no final XOR.
func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
