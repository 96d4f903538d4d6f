package journal

import (
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/track"
	"main/pkg/conn"
)

// Postgres journals orders and fills into a PostgreSQL database.
type Postgres struct {
	client *conn.Client
}

var _ Journal = (*Postgres)(nil)

// NewPostgres dials the database and migrates the journal tables.
func NewPostgres(option conn.Option) (*Postgres, error) {
	client, err := conn.New(option)
	if err != nil {
		return nil, errors.Wrap(err, "dial postgres")
	}

	if err := client.DB().AutoMigrate(&OrderRecord{}, &FillRecord{}); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "migrate journal tables")
	}

	return &Postgres{client: client}, nil
}

func (j *Postgres) Close() error {
	return j.client.Close()
}

func (j *Postgres) OrderSubmitted(o *track.Order) {
	record := OrderRecord{
		OrderID:     o.ID,
		AccountID:   o.AccountID,
		Ticker:      o.Symbol.Ticker,
		Side:        o.Side.String(),
		Quantity:    o.Quantity,
		SubmittedAt: time.Now().UTC(),
	}

	if err := j.client.DB().Create(&record).Error; err != nil {
		logs.Errorf("journal order %d: %+v", o.ID, err)
	}
}

func (j *Postgres) OrderFilled(o *track.Order) {
	quantity := o.Quantity
	if filled, err := o.Filled(); err == nil {
		quantity = filled
	}

	record := FillRecord{
		OrderID:   o.ID,
		AccountID: o.AccountID,
		Ticker:    o.Symbol.Ticker,
		Side:      o.Side.String(),
		Quantity:  quantity,
		FilledAt:  time.Now().UTC(),
	}

	if err := j.client.DB().Create(&record).Error; err != nil {
		logs.Errorf("journal fill %d: %+v", o.ID, err)
	}
}
