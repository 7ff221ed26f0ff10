package payments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paylens/pkg/platform/sentinel"
)

func testPayment(email string, paidAt time.Time, items ...PaymentItem) Payment {
	return Payment{
		ID:     uuid.New(),
		User:   User{ID: uuid.New(), Email: email},
		PaidAt: paidAt,
		Items:  items,
	}
}

func Test_InMemoryStore_SaveAndFindAll(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	first := testPayment("ann@example.com", time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC),
		PaymentItem{Name: "keyboard", RegularPrice: decimal.NewFromInt(120), FinalPrice: decimal.NewFromInt(100)})
	second := testPayment("bob@example.com", time.Date(2023, time.June, 2, 10, 0, 0, 0, time.UTC))

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	got, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID, "insertion order preserved")
	assert.Equal(t, second.ID, got[1].ID)
}

func Test_InMemoryStore_SaveRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	p := testPayment("ann@example.com", time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, p))

	err := store.Save(ctx, p)
	require.ErrorIs(t, err, sentinel.ErrConflict)

	got, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func Test_InMemoryStore_FindAllReturnsClones(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(testPayment("ann@example.com", time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC),
		PaymentItem{Name: "keyboard", RegularPrice: decimal.NewFromInt(120), FinalPrice: decimal.NewFromInt(100)}))

	first, err := store.FindAll(ctx)
	require.NoError(t, err)
	first[0].Items[0].Name = "mutated"

	again, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "keyboard", again[0].Items[0].Name, "mutating a result must not touch stored data")
}

func Test_InMemoryStore_SeedOrderIsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	a := testPayment("a@example.com", time.Date(2023, time.June, 3, 0, 0, 0, 0, time.UTC))
	b := testPayment("b@example.com", time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC))
	c := testPayment("c@example.com", time.Date(2023, time.June, 2, 0, 0, 0, 0, time.UTC))

	store := NewInMemoryStore(a, b, c)

	got, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}
