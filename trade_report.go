package tops

import "time"

// Sale condition flag byte, most significant bit first. The low three bits
// are reserved and must be zero.
const (
	saleConditionIntermarketSweep   byte = 0x80
	saleConditionExtendedHours      byte = 0x40
	saleConditionOddLot             byte = 0x20
	saleConditionTradeThroughExempt byte = 0x10
	saleConditionSinglePrice        byte = 0x08
	saleConditionFlagCount               = 5
)

// SaleCondition carries the condition flags attached to a trade report.
type SaleCondition struct {
	IntermarketSweep   bool
	ExtendedHours      bool
	OddLot             bool
	TradeThroughExempt bool
	SinglePrice        bool
}

func (sc *SaleCondition) decode(pd packetDecoder) error {
	flags, err := pd.getFlags(saleConditionFlagCount)
	if err != nil {
		return err
	}
	sc.IntermarketSweep = flags&saleConditionIntermarketSweep != 0
	sc.ExtendedHours = flags&saleConditionExtendedHours != 0
	sc.OddLot = flags&saleConditionOddLot != 0
	sc.TradeThroughExempt = flags&saleConditionTradeThroughExempt != 0
	sc.SinglePrice = flags&saleConditionSinglePrice != 0
	return nil
}

func (sc *SaleCondition) encode(pe packetEncoder) {
	var flags byte
	if sc.IntermarketSweep {
		flags |= saleConditionIntermarketSweep
	}
	if sc.ExtendedHours {
		flags |= saleConditionExtendedHours
	}
	if sc.OddLot {
		flags |= saleConditionOddLot
	}
	if sc.TradeThroughExempt {
		flags |= saleConditionTradeThroughExempt
	}
	if sc.SinglePrice {
		flags |= saleConditionSinglePrice
	}
	pe.putUint8(flags)
}

// TradeReport is an executed trade on a single symbol.
type TradeReport[S Symbol] struct {
	SaleCondition SaleCondition
	Timestamp     time.Time
	Symbol        S
	Size          uint32
	Price         float64

	// ID identifies the trade, e.g. for matching a later trade break.
	// The decoder enforces no ordering across messages.
	ID int64
}

func (m *TradeReport[S]) tag() byte { return tagTradeReport }

// flags + timestamp + symbol + size + price + id
func (m *TradeReport[S]) bodyLength() int { return 1 + 8 + symbolWidth + 4 + 8 + 8 }

func (m *TradeReport[S]) decode(pd packetDecoder) (err error) {
	if err = m.SaleCondition.decode(pd); err != nil {
		return err
	}
	if m.Timestamp, err = pd.getTimestamp(); err != nil {
		return err
	}

	symbol, err := pd.getPaddedBytes(symbolWidth)
	if err != nil {
		return err
	}
	m.Symbol = S(symbol)

	if m.Size, err = pd.getUint32(); err != nil {
		return err
	}
	if m.Price, err = pd.getPrice(); err != nil {
		return err
	}
	m.ID, err = pd.getInt64()
	return err
}

func (m *TradeReport[S]) encode(pe packetEncoder) {
	m.SaleCondition.encode(pe)
	pe.putTimestamp(m.Timestamp)
	pe.putPaddedBytes([]byte(m.Symbol), symbolWidth)
	pe.putUint32(m.Size)
	pe.putPrice(m.Price)
	pe.putInt64(m.ID)
}
