package tops

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

// realDecoder is a cursor over a borrowed byte slice. It never copies the
// input; on truncation it parks the offset at the end of the buffer and
// returns ErrInsufficientData.
type realDecoder struct {
	raw []byte
	off int
}

func (rd *realDecoder) remaining() int {
	return len(rd.raw) - rd.off
}

func (rd *realDecoder) getUint8() (uint8, error) {
	if rd.remaining() < 1 {
		rd.off = len(rd.raw)
		return 0, ErrInsufficientData
	}
	tmp := rd.raw[rd.off]
	rd.off++
	return tmp, nil
}

func (rd *realDecoder) getUint32() (uint32, error) {
	if rd.remaining() < 4 {
		rd.off = len(rd.raw)
		return 0, ErrInsufficientData
	}
	tmp := binary.LittleEndian.Uint32(rd.raw[rd.off:])
	rd.off += 4
	return tmp, nil
}

func (rd *realDecoder) getInt64() (int64, error) {
	if rd.remaining() < 8 {
		rd.off = len(rd.raw)
		return 0, ErrInsufficientData
	}
	tmp := int64(binary.LittleEndian.Uint64(rd.raw[rd.off:]))
	rd.off += 8
	return tmp, nil
}

func (rd *realDecoder) getPrice() (float64, error) {
	tmp, err := rd.getInt64()
	if err != nil {
		return 0, err
	}
	return float64(tmp) / priceScale, nil
}

func (rd *realDecoder) getTimestamp() (time.Time, error) {
	ns, err := rd.getInt64()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, ns).UTC(), nil
}

func (rd *realDecoder) getPaddedBytes(width int) ([]byte, error) {
	tmp, err := rd.getRawBytes(width)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(tmp, " "), nil
}

func (rd *realDecoder) getFlags(used int) (byte, error) {
	tmp, err := rd.getUint8()
	if err != nil {
		return 0, err
	}
	reserved := byte(1<<(8-used)) - 1
	if tmp&reserved != 0 {
		return 0, PacketDecodingError{fmt.Sprintf("reserved flag bits set (%#02x)", tmp)}
	}
	return tmp, nil
}

func (rd *realDecoder) getRawBytes(length int) ([]byte, error) {
	if rd.remaining() < length {
		rd.off = len(rd.raw)
		return nil, ErrInsufficientData
	}
	tmp := rd.raw[rd.off : rd.off+length]
	rd.off += length
	return tmp, nil
}
