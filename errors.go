package tops

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when decoding and the buffer is truncated
// before a full message. This is expected during streaming: the caller
// should buffer more bytes from the feed and retry.
var ErrInsufficientData = errors.New("tops: insufficient data to decode message, more bytes expected")

// PacketDecodingError is returned when a message tag was recognized but the
// body violates a field-level invariant of the protocol, such as nonzero
// reserved flag bits or an unknown system event subtype. It indicates
// corruption or upstream protocol drift, not a short read.
type PacketDecodingError struct {
	Info string
}

func (err PacketDecodingError) Error() string {
	return fmt.Sprintf("tops: error decoding packet: %s", err.Info)
}

// ConfigurationError is the type of error returned from NewStream when the
// specified configuration is invalid.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return "tops: invalid configuration (" + string(err) + ")"
}

// UnrecognizedTagError is returned when the byte at a message boundary does
// not match any message type of the protocol. The caller decides whether to
// skip, log, or abort the stream.
type UnrecognizedTagError struct {
	Tag byte
}

func (err UnrecognizedTagError) Error() string {
	return fmt.Sprintf("tops: unrecognized message tag %#02x", err.Tag)
}
