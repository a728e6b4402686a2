package tops

// The administrative message kinds below are recognized and consumed but
// their payloads are deliberately not decoded: the tag is the only
// observable fact. Their layouts are not guessed at here; if a consumer
// ever needs the fields, the types gain them then. Encoding a marker emits
// a zero-filled body, since the payload was never captured.

func skipBody(pd packetDecoder, body messageBody) error {
	_, err := pd.getRawBytes(body.bodyLength())
	return err
}

func zeroBody(pe packetEncoder, body messageBody) {
	pe.putRawBytes(make([]byte, body.bodyLength()))
}

// SecurityDirectory announces a symbol tradable on the exchange.
type SecurityDirectory struct{}

func (m *SecurityDirectory) tag() byte { return tagSecurityDirectory }
func (m *SecurityDirectory) bodyLength() int { return 30 }
func (m *SecurityDirectory) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *SecurityDirectory) encode(pe packetEncoder) { zeroBody(pe, m) }

// TradingStatus reports the current trading state of a symbol.
type TradingStatus struct{}

func (m *TradingStatus) tag() byte { return tagTradingStatus }
func (m *TradingStatus) bodyLength() int { return 21 }
func (m *TradingStatus) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *TradingStatus) encode(pe packetEncoder) { zeroBody(pe, m) }

// RetailLiquidityIndicator signals retail interest on a symbol.
type RetailLiquidityIndicator struct{}

func (m *RetailLiquidityIndicator) tag() byte { return tagRetailLiquidityIndicator }
func (m *RetailLiquidityIndicator) bodyLength() int { return 17 }
func (m *RetailLiquidityIndicator) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *RetailLiquidityIndicator) encode(pe packetEncoder) { zeroBody(pe, m) }

// OperationalHaltStatus reports an exchange-operational halt on a symbol.
type OperationalHaltStatus struct{}

func (m *OperationalHaltStatus) tag() byte { return tagOperationalHaltStatus }
func (m *OperationalHaltStatus) bodyLength() int { return 17 }
func (m *OperationalHaltStatus) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *OperationalHaltStatus) encode(pe packetEncoder) { zeroBody(pe, m) }

// ShortSalePriceTestStatus reports Reg SHO price test state for a symbol.
type ShortSalePriceTestStatus struct{}

func (m *ShortSalePriceTestStatus) tag() byte { return tagShortSalePriceTestStatus }
func (m *ShortSalePriceTestStatus) bodyLength() int { return 18 }
func (m *ShortSalePriceTestStatus) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *ShortSalePriceTestStatus) encode(pe packetEncoder) { zeroBody(pe, m) }

// OfficialPrice carries an official opening or closing price.
type OfficialPrice struct{}

func (m *OfficialPrice) tag() byte { return tagOfficialPrice }
func (m *OfficialPrice) bodyLength() int { return 25 }
func (m *OfficialPrice) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *OfficialPrice) encode(pe packetEncoder) { zeroBody(pe, m) }

// TradeBreak voids a previously reported trade.
type TradeBreak struct{}

func (m *TradeBreak) tag() byte { return tagTradeBreak }
func (m *TradeBreak) bodyLength() int { return 37 }
func (m *TradeBreak) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *TradeBreak) encode(pe packetEncoder) { zeroBody(pe, m) }

// AuctionInformation carries opening/closing auction state.
type AuctionInformation struct{}

func (m *AuctionInformation) tag() byte { return tagAuctionInformation }
func (m *AuctionInformation) bodyLength() int { return 79 }
func (m *AuctionInformation) decode(pd packetDecoder) error { return skipBody(pd, m) }
func (m *AuctionInformation) encode(pe packetEncoder) { zeroBody(pe, m) }
