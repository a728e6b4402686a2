package tops

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var quoteUpdateZIEXT = []byte{
	0x51,                                           // QuoteUpdate
	0x00,                                           // flags: available, regular session
	0xAC, 0x63, 0xC0, 0x20, 0x96, 0x86, 0x6D, 0x14, // 2016-08-23T19:30:32.572715948Z
	0x5A, 0x49, 0x45, 0x58, 0x54, 0x20, 0x20, 0x20, // "ZIEXT   "
	0xE4, 0x25, 0x00, 0x00, // bid size 9,700
	0x24, 0x1D, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, // bid price 99.05
	0xEC, 0x1D, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, // ask price 99.07
	0xE8, 0x03, 0x00, 0x00, // ask size 1,000
}

func TestQuoteUpdateReferenceVector(t *testing.T) {
	msg, remaining, err := DecodeMessage[string](quoteUpdateZIEXT)
	require.NoError(t, err)
	require.Empty(t, remaining)

	quote, ok := msg.(*QuoteUpdate[string])
	require.True(t, ok, "expected *QuoteUpdate, got %T", msg)

	require.True(t, quote.Available)
	require.Equal(t, Regular, quote.Session)
	require.Equal(t, int64(1471980632572715948), quote.Timestamp.UnixNano())
	require.Equal(t, "ZIEXT", quote.Symbol)
	require.Equal(t, uint32(9700), quote.BidSize)
	require.InDelta(t, 99.05, quote.BidPrice, 0.0001)
	require.Equal(t, uint32(1000), quote.AskSize)
	require.InDelta(t, 99.07, quote.AskPrice, 0.0001)
}

func TestQuoteUpdateRoundTrip(t *testing.T) {
	msg, _, err := DecodeMessage[string](quoteUpdateZIEXT)
	require.NoError(t, err)
	require.Equal(t, quoteUpdateZIEXT, EncodeMessage[string](msg))
}

func TestQuoteUpdateFlagByte(t *testing.T) {
	input := make([]byte, len(quoteUpdateZIEXT))
	copy(input, quoteUpdateZIEXT)
	input[1] = 0xC0 // not available, out of hours

	msg, _, err := DecodeMessage[string](input)
	require.NoError(t, err)

	quote := msg.(*QuoteUpdate[string])
	require.False(t, quote.Available)
	require.Equal(t, OutOfHours, quote.Session)
}

func TestQuoteUpdateReservedBitsRejected(t *testing.T) {
	for _, flags := range []byte{0x01, 0x02, 0x08, 0x20, 0x3F, 0xFF} {
		input := make([]byte, len(quoteUpdateZIEXT))
		copy(input, quoteUpdateZIEXT)
		input[1] = flags

		_, _, err := DecodeMessage[string](input)
		var decodingErr PacketDecodingError
		require.ErrorAs(t, err, &decodingErr, "flags %#02x must be rejected", flags)
	}
}

func TestQuoteUpdateZeroCopySymbol(t *testing.T) {
	msg, _, err := DecodeMessage[[]byte](quoteUpdateZIEXT)
	require.NoError(t, err)

	quote := msg.(*QuoteUpdate[[]byte])
	require.Equal(t, []byte("ZIEXT"), quote.Symbol)

	// the []byte instantiation aliases the input buffer rather than copying
	if !bytes.Equal(quote.Symbol, quoteUpdateZIEXT[10:15]) || &quote.Symbol[0] != &quoteUpdateZIEXT[10] {
		t.Error("expected symbol to alias the input buffer")
	}
}

func TestQuoteUpdateIncomplete(t *testing.T) {
	for width := 0; width < len(quoteUpdateZIEXT); width++ {
		_, remaining, err := DecodeMessage[string](quoteUpdateZIEXT[:width])
		if !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("prefix of %d bytes: err = %v, want ErrInsufficientData", width, err)
		}
		if len(remaining) != width {
			t.Fatalf("prefix of %d bytes: remaining = %d, want untouched input", width, len(remaining))
		}
	}
}
