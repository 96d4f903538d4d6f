package bridge

import (
	"github.com/yanun0323/errors"

	"main/internal/adapter"
	"main/internal/adapter/enum"
)

func (c *Client) SubscribeAccountSummary(tags ...enum.SummaryTag) (int64, error) {
	reqID := c.book.Allocate()
	payload := request{
		Op:    opSubscribeAccountSummary,
		ReqID: reqID,
		Tags:  enum.JoinSummaryTags(tags),
	}

	if err := c.wss.WriteJSON(payload); err != nil {
		c.book.Release(reqID)
		return 0, errors.Wrap(err, "write subscribe summary payload").With("payload", payload)
	}

	return reqID, nil
}

func (c *Client) CancelAccountSummary(reqID int64) error {
	c.book.Release(reqID)

	payload := request{
		Op:    opCancelAccountSummary,
		ReqID: reqID,
	}

	if err := c.wss.WriteJSON(payload); err != nil {
		return errors.Wrap(err, "write cancel summary payload").With("payload", payload)
	}

	return nil
}

func (c *Client) SubscribePositions() error {
	if err := c.wss.WriteJSON(request{Op: opSubscribePositions}); err != nil {
		return errors.Wrap(err, "write subscribe positions payload")
	}

	return nil
}

func (c *Client) CancelPositions() error {
	if err := c.wss.WriteJSON(request{Op: opCancelPositions}); err != nil {
		return errors.Wrap(err, "write cancel positions payload")
	}

	return nil
}

func (c *Client) SubscribeMarketData(symbol adapter.Symbol) (int64, error) {
	reqID := c.book.AllocateMarketData(symbol)
	payload := request{
		Op:       opSubscribeMarketData,
		ReqID:    reqID,
		Symbol:   symbol.Ticker,
		Venue:    symbol.Venue,
		Currency: symbol.Currency,
		SecType:  "STK",
	}

	if err := c.wss.WriteJSON(payload); err != nil {
		c.book.Release(reqID)
		return 0, errors.Wrap(err, "write subscribe market data payload").With("payload", payload)
	}

	return reqID, nil
}

func (c *Client) CancelMarketData(reqID int64) error {
	c.book.Release(reqID)

	payload := request{
		Op:    opCancelMarketData,
		ReqID: reqID,
	}

	if err := c.wss.WriteJSON(payload); err != nil {
		return errors.Wrap(err, "write cancel market data payload").With("payload", payload)
	}

	return nil
}

func (c *Client) PlaceOrder(spec adapter.OrderSpec) (int64, error) {
	orderID, err := c.ids.Next()
	if err != nil {
		return 0, errors.Wrap(err, "allocate order id")
	}

	payload := request{
		Op:        opPlaceOrder,
		OrderID:   orderID,
		Account:   spec.AccountID,
		Symbol:    spec.Symbol.Ticker,
		Venue:     spec.Symbol.Venue,
		Currency:  spec.Symbol.Currency,
		SecType:   "STK",
		Side:      spec.Side.String(),
		OrderType: "MKT",
		Urgency:   spec.Urgency.String(),
		Quantity:  spec.Quantity,
	}

	if err := c.wss.WriteJSON(payload); err != nil {
		return 0, errors.Wrap(err, "write place order payload").With("payload", payload)
	}

	return orderID, nil
}

func (c *Client) TickerFor(reqID int64) (adapter.Symbol, bool) {
	return c.book.TickerFor(reqID)
}

func (c *Client) Disconnect() error {
	if err := c.wss.WriteJSON(request{Op: opDisconnect}); err != nil {
		c.wss.Close()
		return errors.Wrap(err, "write disconnect payload")
	}

	c.wss.Close()
	return nil
}
