package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"paylens/pkg/platform/sentinel"
)

// demoID derives a stable UUID so repeated seeding writes the same rows and
// existing ones can be skipped as conflicts.
func demoID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("paylens/demo/%s/%d", kind, n)))
}

// SeedDemo loads a small deterministic snapshot anchored to the given now so
// a fresh instance has data for every report, current-month queries included.
// Seeding is idempotent: payments that already exist are skipped. Returns how
// many payments were written.
func SeedDemo(ctx context.Context, store Store, now time.Time) (int, error) {
	ann := User{ID: demoID("user", 1), Email: "ann@example.com"}
	bob := User{ID: demoID("user", 2), Email: "bob@example.com"}
	carol := User{ID: demoID("user", 3), Email: "carol@example.com"}

	price := decimal.RequireFromString
	monthStart := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, now.Location())

	payments := []Payment{
		{
			ID:     demoID("payment", 1),
			User:   ann,
			PaidAt: monthStart,
			Items: []PaymentItem{
				{Name: "Mechanical Keyboard", RegularPrice: price("120"), FinalPrice: price("95")},
				{Name: "USB-C Cable", RegularPrice: price("15"), FinalPrice: price("15")},
			},
		},
		{
			ID:     demoID("payment", 2),
			User:   bob,
			PaidAt: monthStart.AddDate(0, 0, 2),
			Items: []PaymentItem{
				{Name: "4K Monitor", RegularPrice: price("800"), FinalPrice: price("700")},
			},
		},
		{
			ID:     demoID("payment", 3),
			User:   carol,
			PaidAt: monthStart.AddDate(0, 0, 5),
			Items: []PaymentItem{
				{Name: "USB-C Cable", RegularPrice: price("15"), FinalPrice: price("12.5")},
				{Name: "Laptop Stand", RegularPrice: price("49.9"), FinalPrice: price("39.9")},
				{Name: "Desk Mat", RegularPrice: price("25"), FinalPrice: price("25")},
			},
		},
		{
			ID:     demoID("payment", 4),
			User:   ann,
			PaidAt: monthStart.AddDate(0, -1, 3),
			Items: []PaymentItem{
				{Name: "Workstation", RegularPrice: price("2400"), FinalPrice: price("2150")},
			},
		},
		{
			ID:     demoID("payment", 5),
			User:   bob,
			PaidAt: monthStart.AddDate(0, -1, 12),
			Items:  []PaymentItem{},
		},
		{
			ID:     demoID("payment", 6),
			User:   carol,
			PaidAt: monthStart.AddDate(0, -3, 10),
			Items: []PaymentItem{
				{Name: "Webcam", RegularPrice: price("89"), FinalPrice: price("79")},
				{Name: "Ring Light", RegularPrice: price("35"), FinalPrice: price("35")},
			},
		},
		{
			ID:     demoID("payment", 7),
			User:   ann,
			PaidAt: monthStart.AddDate(-1, 0, 14),
			Items: []PaymentItem{
				{Name: "Mechanical Keyboard", RegularPrice: price("110"), FinalPrice: price("110")},
			},
		},
	}

	written := 0
	for _, p := range payments {
		if err := store.Save(ctx, p); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				continue
			}
			return written, fmt.Errorf("seed payment %s: %w", p.ID, err)
		}
		written++
	}
	return written, nil
}
