package tops

import "time"

// MarketSession distinguishes regular trading hours from pre- and
// post-market sessions.
type MarketSession byte

const (
	Regular MarketSession = iota
	OutOfHours
)

func (s MarketSession) String() string {
	if s == OutOfHours {
		return "out of hours"
	}
	return "regular"
}

// Quote update flag byte, most significant bit first. The wire carries
// "symbol not available"; the record exposes the negation. The low six bits
// are reserved and must be zero.
const (
	quoteFlagUnavailable byte = 0x80
	quoteFlagOutOfHours  byte = 0x40
	quoteFlagCount            = 2
)

// QuoteUpdate is a top-of-book quote for a single symbol.
type QuoteUpdate[S Symbol] struct {
	Available bool
	Session   MarketSession
	Timestamp time.Time
	Symbol    S
	BidSize   uint32
	BidPrice  float64
	AskSize   uint32
	AskPrice  float64
}

func (m *QuoteUpdate[S]) tag() byte { return tagQuoteUpdate }

// flags + timestamp + symbol + bid size + bid price + ask price + ask size
func (m *QuoteUpdate[S]) bodyLength() int { return 1 + 8 + symbolWidth + 4 + 8 + 8 + 4 }

func (m *QuoteUpdate[S]) decode(pd packetDecoder) (err error) {
	flags, err := pd.getFlags(quoteFlagCount)
	if err != nil {
		return err
	}
	m.Available = flags&quoteFlagUnavailable == 0
	if flags&quoteFlagOutOfHours != 0 {
		m.Session = OutOfHours
	} else {
		m.Session = Regular
	}

	if m.Timestamp, err = pd.getTimestamp(); err != nil {
		return err
	}

	symbol, err := pd.getPaddedBytes(symbolWidth)
	if err != nil {
		return err
	}
	m.Symbol = S(symbol)

	if m.BidSize, err = pd.getUint32(); err != nil {
		return err
	}
	if m.BidPrice, err = pd.getPrice(); err != nil {
		return err
	}
	// the ask side arrives price first; the asymmetry is part of the wire
	// format
	if m.AskPrice, err = pd.getPrice(); err != nil {
		return err
	}
	m.AskSize, err = pd.getUint32()
	return err
}

func (m *QuoteUpdate[S]) encode(pe packetEncoder) {
	var flags byte
	if !m.Available {
		flags |= quoteFlagUnavailable
	}
	if m.Session == OutOfHours {
		flags |= quoteFlagOutOfHours
	}
	pe.putUint8(flags)
	pe.putTimestamp(m.Timestamp)
	pe.putPaddedBytes([]byte(m.Symbol), symbolWidth)
	pe.putUint32(m.BidSize)
	pe.putPrice(m.BidPrice)
	pe.putPrice(m.AskPrice)
	pe.putUint32(m.AskSize)
}
