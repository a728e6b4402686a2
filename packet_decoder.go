package tops

import "time"

// packetDecoder is the set of primitive field reads the TOPS wire format is
// built from. All integers are little-endian.
type packetDecoder interface {
	remaining() int

	getUint8() (uint8, error)
	getUint32() (uint32, error)
	getInt64() (int64, error)

	// getPrice reads an 8-byte integer scaled by 10,000 (hundredths of a
	// cent) and returns the unscaled value.
	getPrice() (float64, error)

	// getTimestamp reads an 8-byte count of nanoseconds since the Unix
	// epoch. The feed is already UTC.
	getTimestamp() (time.Time, error)

	// getPaddedBytes reads exactly width bytes and returns a view with
	// trailing ASCII space padding trimmed. The view aliases the input
	// buffer and is only valid while the buffer is.
	getPaddedBytes(width int) ([]byte, error)

	// getFlags reads one flag byte carrying used boolean flags packed from
	// the most significant bit down. The remaining 8-used reserved bits
	// must be zero or decoding fails.
	getFlags(used int) (byte, error)

	getRawBytes(length int) ([]byte, error)
}
