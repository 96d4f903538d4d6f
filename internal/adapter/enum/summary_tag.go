package enum

import "strings"

// SummaryTag names an account summary metric as reported by the broker.
type SummaryTag uint8

const (
	_summary_tag_beg SummaryTag = iota
	TagAccountType
	TagNetLiquidation
	TagTotalCashValue
	TagSettledCash
	TagAccruedCash
	TagBuyingPower
	TagEquityWithLoanValue
	TagPreviousEquityWithLoanValue
	TagGrossPositionValue
	TagRegTEquity
	TagRegTMargin
	TagSMA
	TagInitMarginReq
	TagMaintMarginReq
	TagAvailableFunds
	TagExcessLiquidity
	TagCushion
	TagFullInitMarginReq
	TagFullMaintMarginReq
	TagFullAvailableFunds
	TagFullExcessLiquidity
	TagLookAheadInitMarginReq
	TagLookAheadMaintMarginReq
	TagLookAheadAvailableFunds
	TagLookAheadExcessLiquidity
	TagHighestSeverity
	TagDayTradesRemaining
	_summary_tag_end
)

var summaryTagNames = map[SummaryTag]string{
	TagAccountType:                 "AccountType",
	TagNetLiquidation:              "NetLiquidation",
	TagTotalCashValue:              "TotalCashValue",
	TagSettledCash:                 "SettledCash",
	TagAccruedCash:                 "AccruedCash",
	TagBuyingPower:                 "BuyingPower",
	TagEquityWithLoanValue:         "EquityWithLoanValue",
	TagPreviousEquityWithLoanValue: "PreviousEquityWithLoanValue",
	TagGrossPositionValue:          "GrossPositionValue",
	TagRegTEquity:                  "RegTEquity",
	TagRegTMargin:                  "RegTMargin",
	TagSMA:                         "SMA",
	TagInitMarginReq:               "InitMarginReq",
	TagMaintMarginReq:              "MaintMarginReq",
	TagAvailableFunds:              "AvailableFunds",
	TagExcessLiquidity:             "ExcessLiquidity",
	TagCushion:                     "Cushion",
	TagFullInitMarginReq:           "FullInitMarginReq",
	TagFullMaintMarginReq:          "FullMaintMarginReq",
	TagFullAvailableFunds:          "FullAvailableFunds",
	TagFullExcessLiquidity:         "FullExcessLiquidity",
	TagLookAheadInitMarginReq:      "LookAheadInitMarginReq",
	TagLookAheadMaintMarginReq:     "LookAheadMaintMarginReq",
	TagLookAheadAvailableFunds:     "LookAheadAvailableFunds",
	TagLookAheadExcessLiquidity:    "LookAheadExcessLiquidity",
	TagHighestSeverity:             "HighestSeverity",
	TagDayTradesRemaining:          "DayTradesRemaining",
}

var summaryTagLookup = func() map[string]SummaryTag {
	m := make(map[string]SummaryTag, len(summaryTagNames))
	for tag, name := range summaryTagNames {
		m[strings.ToLower(name)] = tag
	}
	return m
}()

func (t SummaryTag) IsAvailable() bool {
	return t > _summary_tag_beg && t < _summary_tag_end
}

func (t SummaryTag) String() string {
	if name, ok := summaryTagNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseSummaryTag resolves a broker tag string case-insensitively.
func ParseSummaryTag(value string) (SummaryTag, bool) {
	tag, ok := summaryTagLookup[strings.ToLower(value)]
	return tag, ok
}

// JoinSummaryTags renders a tag set in the comma-separated form the broker
// subscription request expects.
func JoinSummaryTags(tags []SummaryTag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.String())
	}
	return strings.Join(names, ",")
}
