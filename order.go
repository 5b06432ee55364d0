package dash

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order, as reported by the back-end.
type Status string

const (
	StatusNew               Status = "new"
	StatusPartiallyFilled   Status = "partially_filled"
	StatusFilled            Status = "filled"
	StatusPartiallyCanceled Status = "partially_canceled"
	StatusCanceled          Status = "canceled"
	StatusRejected          Status = "rejected"
	StatusExpired           Status = "expired"
)

// Order is one order-book entry. UpdatedAt is the zero time when the
// back-end sent no parsable timestamp, which is benign: the row simply has
// no determinable age.
type Order struct {
	ID        string
	Symbol    string
	Side      Side
	Type      string
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	Filled    decimal.Decimal
	Status    Status
	UpdatedAt time.Time
}

// Age returns how long ago the order was last updated, and false when the
// order has no determinable age.
func (o Order) Age(now time.Time) (time.Duration, bool) {
	if o.UpdatedAt.IsZero() {
		return 0, false
	}
	return now.Sub(o.UpdatedAt), true
}
