package tops

import "time"

// packetEncoder is the write-side mirror of packetDecoder. Message body
// lengths are static, so buffers are sized up front and the put methods
// cannot fail.
type packetEncoder interface {
	putUint8(in uint8)
	putUint32(in uint32)
	putInt64(in int64)
	putPrice(in float64)
	putTimestamp(in time.Time)

	// putPaddedBytes writes in right-padded with ASCII spaces to exactly
	// width bytes, truncating if longer.
	putPaddedBytes(in []byte, width int)

	putRawBytes(in []byte)
}
