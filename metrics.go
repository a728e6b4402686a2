package tops

import (
	"fmt"

	"github.com/rcrowley/go-metrics"
)

func getOrRegisterHistogram(name string, r metrics.Registry) metrics.Histogram {
	return r.GetOrRegister(name, func() metrics.Histogram {
		return metrics.NewHistogram(metrics.NewExpDecaySample(1028, 0.015))
	}).(metrics.Histogram)
}

func getMetricNameForKind(name string, tag byte) string {
	return fmt.Sprintf(name+"-for-%s", kindName(tag))
}

func getOrRegisterKindMeter(name string, tag byte, r metrics.Registry) metrics.Meter {
	return metrics.GetOrRegisterMeter(getMetricNameForKind(name, tag), r)
}

func kindName(tag byte) string {
	switch tag {
	case tagSystemEvent:
		return "system-event"
	case tagSecurityDirectory:
		return "security-directory"
	case tagTradingStatus:
		return "trading-status"
	case tagRetailLiquidityIndicator:
		return "retail-liquidity-indicator"
	case tagOperationalHaltStatus:
		return "operational-halt-status"
	case tagShortSalePriceTestStatus:
		return "short-sale-price-test-status"
	case tagQuoteUpdate:
		return "quote-update"
	case tagTradeReport:
		return "trade-report"
	case tagOfficialPrice:
		return "official-price"
	case tagTradeBreak:
		return "trade-break"
	case tagAuctionInformation:
		return "auction-information"
	}
	return fmt.Sprintf("unknown-%#02x", tag)
}
