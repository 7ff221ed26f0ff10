package payments

import (
	"context"
)

// Store is the payment snapshot source. FindAll returns the full snapshot in
// insertion order; every query evaluates against one such snapshot.
type Store interface {
	FindAll(ctx context.Context) ([]Payment, error)
	Save(ctx context.Context, payment Payment) error
}
