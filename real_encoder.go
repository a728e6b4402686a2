package tops

import (
	"encoding/binary"
	"math"
	"time"
)

type realEncoder struct {
	raw []byte
	off int
}

func (re *realEncoder) putUint8(in uint8) {
	re.raw[re.off] = in
	re.off++
}

func (re *realEncoder) putUint32(in uint32) {
	binary.LittleEndian.PutUint32(re.raw[re.off:], in)
	re.off += 4
}

func (re *realEncoder) putInt64(in int64) {
	binary.LittleEndian.PutUint64(re.raw[re.off:], uint64(in))
	re.off += 8
}

func (re *realEncoder) putPrice(in float64) {
	re.putInt64(int64(math.Round(in * priceScale)))
}

func (re *realEncoder) putTimestamp(in time.Time) {
	re.putInt64(in.UnixNano())
}

func (re *realEncoder) putPaddedBytes(in []byte, width int) {
	if len(in) > width {
		in = in[:width]
	}
	n := copy(re.raw[re.off:re.off+width], in)
	for i := n; i < width; i++ {
		re.raw[re.off+i] = ' '
	}
	re.off += width
}

func (re *realEncoder) putRawBytes(in []byte) {
	re.off += copy(re.raw[re.off:], in)
}
