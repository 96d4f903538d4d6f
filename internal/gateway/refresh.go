package gateway

import (
	"main/internal/adapter/enum"
	"main/pkg/exception"

	"github.com/yanun0323/errors"
)

// RequiredSummaryTags are the metrics the decision loop depends on.
var RequiredSummaryTags = []enum.SummaryTag{
	enum.TagNetLiquidation,
	enum.TagGrossPositionValue,
	enum.TagMaintMarginReq,
}

// AccountRefresher owns the account-summary and positions subscriptions
// and reissues both after a fill. It runs entirely on the decision
// thread, so cancel and resubscribe for one logical subscription are
// never interleaved with other decision work.
type AccountRefresher struct {
	session    Session
	tags       []enum.SummaryTag
	summaryReq int64
	active     bool
}

func NewAccountRefresher(session Session, tags []enum.SummaryTag) *AccountRefresher {
	if len(tags) == 0 {
		tags = RequiredSummaryTags
	}
	return &AccountRefresher{session: session, tags: tags}
}

// Start opens the initial subscriptions.
func (r *AccountRefresher) Start() error {
	reqID, err := r.session.SubscribeAccountSummary(r.tags...)
	if err != nil {
		return errors.Wrap(err, "subscribe account summary")
	}
	r.summaryReq = reqID

	if err := r.session.SubscribePositions(); err != nil {
		return errors.Wrap(err, "subscribe positions")
	}
	r.active = true
	return nil
}

// RefreshAccountData cancels and reissues both subscriptions.
func (r *AccountRefresher) RefreshAccountData() error {
	if !r.active {
		return exception.ErrSessionNotConnected
	}

	if err := r.session.CancelAccountSummary(r.summaryReq); err != nil {
		return errors.Wrap(err, "cancel account summary")
	}
	reqID, err := r.session.SubscribeAccountSummary(r.tags...)
	if err != nil {
		return errors.Wrap(err, "resubscribe account summary")
	}
	r.summaryReq = reqID

	if err := r.session.CancelPositions(); err != nil {
		return errors.Wrap(err, "cancel positions")
	}
	if err := r.session.SubscribePositions(); err != nil {
		return errors.Wrap(err, "resubscribe positions")
	}
	return nil
}
