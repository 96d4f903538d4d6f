package enum

import (
	"main/pkg/exception"

	"github.com/yanun0323/errors"
)

// OrderSide buy, sell
type OrderSide uint8

const (
	_order_side_beg OrderSide = iota
	OrderSideBuy
	OrderSideSell
	_order_side_end
)

func (s OrderSide) IsAvailable() bool {
	return s > _order_side_beg && s < _order_side_end
}

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "BUY"
	case OrderSideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseOrderSide maps a broker action string to its OrderSide.
func ParseOrderSide(value string) (OrderSide, error) {
	switch value {
	case "BUY":
		return OrderSideBuy, nil
	case "SELL":
		return OrderSideSell, nil
	default:
		return 0, errors.Wrap(exception.ErrInvalidArgument, "order side "+value)
	}
}

// OrderUrgency patient, normal, urgent
//
// Maps to the broker's adaptive-algo priority.
type OrderUrgency uint8

const (
	_order_urgency_beg OrderUrgency = iota
	OrderUrgencyPatient
	OrderUrgencyNormal
	OrderUrgencyUrgent
	_order_urgency_end
)

func (u OrderUrgency) IsAvailable() bool {
	return u > _order_urgency_beg && u < _order_urgency_end
}

func (u OrderUrgency) String() string {
	switch u {
	case OrderUrgencyPatient:
		return "Patient"
	case OrderUrgencyNormal:
		return "Normal"
	case OrderUrgencyUrgent:
		return "Urgent"
	default:
		return "UNKNOWN"
	}
}

// ParseOrderUrgency maps a config string to its OrderUrgency.
func ParseOrderUrgency(value string) (OrderUrgency, error) {
	switch value {
	case "Patient":
		return OrderUrgencyPatient, nil
	case "Normal":
		return OrderUrgencyNormal, nil
	case "Urgent":
		return OrderUrgencyUrgent, nil
	default:
		return 0, errors.Wrap(exception.ErrInvalidArgument, "order urgency "+value)
	}
}

// OrderStatus is the broker-reported order lifecycle state. The set is
// closed; a report outside it means the gateway protocol has drifted.
type OrderStatus uint8

const (
	_order_status_beg OrderStatus = iota
	OrderStatusPendingSubmit
	OrderStatusPendingCancel
	OrderStatusPreSubmitted
	OrderStatusSubmitted
	OrderStatusApiCancelled
	OrderStatusCancelled
	OrderStatusFilled
	OrderStatusInactive
	_order_status_end
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusPendingSubmit: "PendingSubmit",
	OrderStatusPendingCancel: "PendingCancel",
	OrderStatusPreSubmitted:  "PreSubmitted",
	OrderStatusSubmitted:     "Submitted",
	OrderStatusApiCancelled:  "ApiCancelled",
	OrderStatusCancelled:     "Cancelled",
	OrderStatusFilled:        "Filled",
	OrderStatusInactive:      "Inactive",
}

var orderStatusLookup = func() map[string]OrderStatus {
	m := make(map[string]OrderStatus, len(orderStatusNames))
	for status, name := range orderStatusNames {
		m[name] = status
	}
	return m
}()

func (s OrderStatus) IsAvailable() bool {
	return s > _order_status_beg && s < _order_status_end
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsOpen reports whether the status counts as a working order for
// decision purposes. Terminal states stay visible but are not open.
func (s OrderStatus) IsOpen() bool {
	switch s {
	case OrderStatusFilled, OrderStatusCancelled, OrderStatusApiCancelled, OrderStatusInactive:
		return false
	default:
		return true
	}
}

// ParseOrderStatus maps a broker status string to its OrderStatus. An
// unrecognized string errors; the caller treats that as fatal.
func ParseOrderStatus(value string) (OrderStatus, error) {
	if status, ok := orderStatusLookup[value]; ok {
		return status, nil
	}
	return 0, errors.Wrap(exception.ErrOrderUnknownStatus, value)
}
