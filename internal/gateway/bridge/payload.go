package bridge

import (
	"strconv"

	"github.com/yanun0323/decimal"
	"github.com/yanun0323/logs"
)

// Outbound request operations understood by the gateway daemon.
const (
	opConnect                 = "connect"
	opDisconnect              = "disconnect"
	opSubscribeAccountSummary = "subscribeAccountSummary"
	opCancelAccountSummary    = "cancelAccountSummary"
	opSubscribePositions      = "subscribePositions"
	opCancelPositions         = "cancelPositions"
	opSubscribeMarketData     = "subscribeMarketData"
	opCancelMarketData        = "cancelMarketData"
	opPlaceOrder              = "placeOrder"
)

// Inbound event types.
const (
	evAccountSummary    = "accountSummary"
	evAccountSummaryEnd = "accountSummaryEnd"
	evPosition          = "position"
	evPositionEnd       = "positionEnd"
	evTickPrice         = "tickPrice"
	evOrderStatus       = "orderStatus"
	evOpenOrder         = "openOrder"
	evNextValidID       = "nextValidId"
	evError             = "error"
)

// Delayed tick-type codes from the broker wire contract. Data subscribed
// in delayed mode reports these instead of the live codes.
const (
	tickDelayedBid  = 66
	tickDelayedAsk  = 67
	tickDelayedLast = 68
	tickDelayedOpen = 76
)

// request is the outbound frame. Unused fields stay empty per op.
type request struct {
	Op       string `json:"op"`
	ClientID int    `json:"clientId,omitempty"`
	ReqID    int64  `json:"reqId,omitempty"`
	Tags     string `json:"tags,omitempty"`

	Symbol   string `json:"symbol,omitempty"`
	Venue    string `json:"venue,omitempty"`
	Currency string `json:"currency,omitempty"`
	SecType  string `json:"secType,omitempty"`

	OrderID   int64  `json:"orderId,omitempty"`
	Account   string `json:"account,omitempty"`
	Side      string `json:"side,omitempty"`
	OrderType string `json:"orderType,omitempty"`
	Urgency   string `json:"urgency,omitempty"`
	Quantity  int64  `json:"quantity,omitempty"`
}

// event is the inbound frame envelope. The daemon forwards broker
// quantities as decimal strings.
type event struct {
	Type string `json:"type"`

	Account string  `json:"account,omitempty"`
	Tag     string  `json:"tag,omitempty"`
	Value   float64 `json:"value,omitempty"`

	Symbol   string          `json:"symbol,omitempty"`
	Venue    string          `json:"venue,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Quantity decimal.Decimal `json:"quantity,omitempty"`

	ReqID    int64   `json:"reqId,omitempty"`
	TickType int     `json:"tickType,omitempty"`
	Price    float64 `json:"price,omitempty"`

	OrderID   int64           `json:"orderId,omitempty"`
	Status    string          `json:"status,omitempty"`
	Side      string          `json:"side,omitempty"`
	Filled    decimal.Decimal `json:"filled,omitempty"`
	Remaining decimal.Decimal `json:"remaining,omitempty"`

	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// quantity narrows a broker decimal payload to a float64 position size.
func quantity(d decimal.Decimal) float64 {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		logs.Warnf("broker quantity %s not numeric, err: %+v", d.String(), err)
	}
	return f
}

// shares narrows a broker decimal payload to whole shares.
func shares(d decimal.Decimal) int64 {
	return int64(quantity(d))
}
