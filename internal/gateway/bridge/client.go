package bridge

import (
	"context"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"
	"github.com/yanun0323/pkg/ws"

	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/internal/bus"
	"main/internal/gateway"
)

// Client speaks the gateway daemon's JSON frame protocol over a
// websocket and turns inbound events into bus messages. It is the
// production gateway.Session.
type Client struct {
	wss      *ws.WebSocket
	queue    *bus.Queue
	book     *gateway.RequestBook
	ids      *gateway.OrderIDs
	clientID int
	done     chan struct{}
}

var _ gateway.Session = (*Client)(nil)

func New(ctx context.Context, url string, clientID int, queue *bus.Queue) *Client {
	return &Client{
		wss:      ws.New(ctx, url),
		queue:    queue,
		book:     gateway.NewRequestBook(),
		ids:      gateway.NewOrderIDs(),
		clientID: clientID,
		done:     make(chan struct{}),
	}
}

// OrderIDs exposes the broker-seeded order id counter.
func (c *Client) OrderIDs() *gateway.OrderIDs {
	return c.ids
}

func eventParser(m ws.Message) (event, bool) {
	var ev event
	err := m.Unmarshal(&ev)
	return ev, err == nil
}

// Connect starts the socket, performs the connect handshake and blocks
// until the daemon reports the next valid order id. The read loop keeps
// publishing into the queue afterwards until Disconnect or ctx.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.wss.Start(ctx); err != nil {
		return errors.Wrap(err, "start wss")
	}

	appendIntoRegister := true
	if err := c.wss.SendAndWait(ctx, ws.Sidecar{
		Sender: func(ctx context.Context, ws *ws.WebSocket) error {
			payload := request{
				Op:       opConnect,
				ClientID: c.clientID,
			}

			if err := ws.WriteJSON(payload); err != nil {
				return errors.Wrap(err, "write connect payload").With("payload", payload)
			}

			return nil
		},
		Waiter: func(ctx context.Context, m ws.Message) (bool, error) {
			ev, ok := eventParser(m)
			if !ok || ev.Type != evNextValidID {
				return false, nil
			}

			if ev.OrderID <= 0 {
				return false, errors.Errorf("connect handshake, bad order id: %d", ev.OrderID)
			}

			c.ids.Seed(ev.OrderID)
			return true, nil
		},
	}, appendIntoRegister); err != nil {
		return errors.Wrap(err, "send and wait")
	}

	go c.readLoop(ctx)

	return nil
}

// Join blocks until the read loop has drained and exited.
func (c *Client) Join() {
	<-c.done
}

func (c *Client) readLoop(ctx context.Context) {
	ch, cancel := c.wss.Subscribe()
	defer cancel()
	defer close(c.done)

	for {
		select {
		case <-sys.Shutdown():
			return
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}

			ev, ok := eventParser(m)
			if !ok {
				logs.Warn("drop undecodable frame")
				continue
			}

			c.dispatch(ev)
		}
	}
}

// dispatch maps one daemon event onto the bus. Events the reconciler has
// no use for are dropped here so the queue carries only the sealed set.
func (c *Client) dispatch(ev event) {
	switch ev.Type {
	case evAccountSummary:
		tag, ok := enum.ParseSummaryTag(ev.Tag)
		if !ok {
			logs.Warnf("drop unknown summary tag %q", ev.Tag)
			return
		}

		c.publish(bus.AccountSummary{
			AccountID: ev.Account,
			Tag:       tag,
			Value:     ev.Value,
		})
	case evAccountSummaryEnd:
		c.publish(bus.AccountSummaryEnd{})
	case evPosition:
		c.publish(bus.Position{
			AccountID: ev.Account,
			Symbol: adapter.Symbol{
				Ticker:   ev.Symbol,
				Venue:    ev.Venue,
				Currency: ev.Currency,
			},
			Quantity: quantity(ev.Quantity),
		})
	case evPositionEnd:
		c.publish(bus.PositionEnd{})
	case evTickPrice:
		field, ok := priceField(ev.TickType)
		if !ok {
			return
		}

		c.publish(bus.TickPrice{
			ReqID: ev.ReqID,
			Field: field,
			Price: ev.Price,
		})
	case evOrderStatus:
		c.publish(bus.OrderStatus{
			OrderID:   ev.OrderID,
			Status:    ev.Status,
			Filled:    shares(ev.Filled),
			Remaining: shares(ev.Remaining),
		})
	case evOpenOrder:
		side, err := enum.ParseOrderSide(ev.Side)
		if err != nil {
			logs.Warnf("drop open order %d side %q: %+v", ev.OrderID, ev.Side, err)
			return
		}

		c.publish(bus.OrderOpened{
			OrderID:   ev.OrderID,
			AccountID: ev.Account,
			Symbol: adapter.Symbol{
				Ticker:   ev.Symbol,
				Venue:    ev.Venue,
				Currency: ev.Currency,
			},
			Side:     side,
			Quantity: shares(ev.Quantity),
		})
	case evNextValidID:
		// Already consumed by the connect handshake; later reissues
		// only ever move the counter forward.
		c.ids.Seed(ev.OrderID)
	case evError:
		c.publish(bus.SessionError{
			Code:   ev.Code,
			Reason: ev.Message,
		})
	default:
		logs.Warnf("drop unknown event type %q", ev.Type)
	}
}

func (c *Client) publish(msg bus.Message) {
	if err := c.queue.Publish(msg); err != nil {
		logs.Warnf("publish %T: %+v", msg, err)
	}
}

func priceField(tickType int) (enum.PriceField, bool) {
	switch tickType {
	case tickDelayedLast:
		return enum.PriceFieldLast, true
	case tickDelayedOpen:
		return enum.PriceFieldOpen, true
	case tickDelayedBid:
		return enum.PriceFieldBid, true
	case tickDelayedAsk:
		return enum.PriceFieldAsk, true
	default:
		return 0, false
	}
}
