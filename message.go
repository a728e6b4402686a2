package tops

// Prices travel as 8-byte little-endian integers counting hundredths of a
// cent; symbols as 8 bytes of ASCII, right-padded with spaces.
const (
	priceScale  = 10000.0
	symbolWidth = 8
)

// Message type tags. Each implies a fixed body length; there is no length
// prefix at this layer.
const (
	tagSystemEvent              byte = 0x53
	tagSecurityDirectory        byte = 0x44
	tagTradingStatus            byte = 0x48
	tagRetailLiquidityIndicator byte = 0x49
	tagOperationalHaltStatus    byte = 0x4F
	tagShortSalePriceTestStatus byte = 0x50
	tagQuoteUpdate              byte = 0x51
	tagTradeReport              byte = 0x54
	tagOfficialPrice            byte = 0x58
	tagTradeBreak               byte = 0x42
	tagAuctionInformation       byte = 0x41
)

// Symbol constrains the representation a caller picks for ticker symbols.
// Anything convertible from the trimmed byte view of the wire field
// qualifies: a ~string type copies, a ~[]byte type aliases the input buffer
// and stays valid only as long as the buffer does.
type Symbol interface {
	~string | ~[]byte
}

type messageBody interface {
	decoder
	encoder
	tag() byte
	bodyLength() int
}

// Message is the closed union over every TOPS 1.6 message kind. A decode
// call yields exactly one fully-populated concrete type behind it:
// *SystemEvent, *QuoteUpdate[S], *TradeReport[S], or one of the
// administrative markers.
type Message[S Symbol] interface {
	messageBody
}

func allocateBody[S Symbol](tag byte) Message[S] {
	switch tag {
	case tagSystemEvent:
		return &SystemEvent{}
	case tagSecurityDirectory:
		return &SecurityDirectory{}
	case tagTradingStatus:
		return &TradingStatus{}
	case tagRetailLiquidityIndicator:
		return &RetailLiquidityIndicator{}
	case tagOperationalHaltStatus:
		return &OperationalHaltStatus{}
	case tagShortSalePriceTestStatus:
		return &ShortSalePriceTestStatus{}
	case tagQuoteUpdate:
		return &QuoteUpdate[S]{}
	case tagTradeReport:
		return &TradeReport[S]{}
	case tagOfficialPrice:
		return &OfficialPrice{}
	case tagTradeBreak:
		return &TradeBreak{}
	case tagAuctionInformation:
		return &AuctionInformation{}
	}
	return nil
}

// DecodeMessage decodes exactly one message from the front of buf and
// returns it with the unconsumed remainder. Failure is one of three kinds:
// ErrInsufficientData when buf does not yet hold a full message (buffer
// more bytes and retry), UnrecognizedTagError when the leading byte matches
// no message kind, and PacketDecodingError when a recognized body violates
// a field-level invariant. No partially-populated message ever escapes.
func DecodeMessage[S Symbol](buf []byte) (Message[S], []byte, error) {
	if len(buf) < 1 {
		return nil, buf, ErrInsufficientData
	}
	body := allocateBody[S](buf[0])
	if body == nil {
		return nil, buf, UnrecognizedTagError{Tag: buf[0]}
	}
	n := body.bodyLength()
	if len(buf)-1 < n {
		return nil, buf, ErrInsufficientData
	}
	rd := realDecoder{raw: buf[1 : 1+n]}
	if err := body.decode(&rd); err != nil {
		return nil, buf, err
	}
	return body, buf[1+n:], nil
}

// EncodeMessage serializes msg to its wire form, tag byte included. The
// symbol type cannot be inferred from the Message interface, so callers
// instantiate explicitly: EncodeMessage[string](msg).
func EncodeMessage[S Symbol](msg Message[S]) []byte {
	raw := make([]byte, 1+msg.bodyLength())
	raw[0] = msg.tag()
	re := realEncoder{raw: raw, off: 1}
	msg.encode(&re)
	return raw
}
