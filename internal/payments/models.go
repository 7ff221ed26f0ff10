package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dErrors "paylens/pkg/domain-errors"
)

// PaymentItem is one product line of a payment. FinalPrice is what was
// actually charged; RegularPrice is the list price. Final at or below
// regular is expected but not enforced, so queries must not assume it.
type PaymentItem struct {
	Name         string          `json:"name"`
	RegularPrice decimal.Decimal `json:"regular_price"`
	FinalPrice   decimal.Decimal `json:"final_price"`
}

// Discount returns regular minus final for this item. Negative when the
// item was charged above list price.
func (i PaymentItem) Discount() decimal.Decimal {
	return i.RegularPrice.Sub(i.FinalPrice)
}

// User is the payer on record. Email comparisons are exact and
// case-sensitive everywhere.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Payment is a recorded payment with its item lines. Items may be empty;
// an empty payment totals to zero.
type Payment struct {
	ID     uuid.UUID     `json:"id"`
	User   User          `json:"user"`
	PaidAt time.Time     `json:"paid_at"`
	Items  []PaymentItem `json:"items"`
}

// Total returns the sum of final prices across all items.
func (p Payment) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.FinalPrice)
	}
	return total
}

// DiscountTotal returns the sum of per-item discounts across all items.
func (p Payment) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Discount())
	}
	return total
}

// Clone returns a deep copy. Stores hand out clones so callers can mutate
// results without touching stored data.
func (p Payment) Clone() Payment {
	out := p
	if p.Items != nil {
		out.Items = make([]PaymentItem, len(p.Items))
		copy(out.Items, p.Items)
	}
	return out
}

// Validate checks the fields required to record a payment.
func (p Payment) Validate() error {
	if p.User.ID == uuid.Nil {
		return dErrors.New(dErrors.CodeInvalidInput, "payment requires a payer id")
	}
	if p.User.Email == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "payment requires a payer email")
	}
	if p.PaidAt.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "payment requires a payment date")
	}
	for _, item := range p.Items {
		if item.Name == "" {
			return dErrors.New(dErrors.CodeInvalidInput, "payment item requires a name")
		}
	}
	return nil
}
