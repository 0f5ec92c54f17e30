package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"clickmart/internal/product"
	"clickmart/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apple() product.Product {
	return product.Product{ID: "p1", Name: "Apple", Price: product.NewPrice(10)}
}

func banana() product.Product {
	return product.Product{ID: "p2", Name: "Banana", Price: product.NewPrice(5.5)}
}

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	slot := storage.NewMemory()
	return NewStore(slot), slot
}

func TestStore_AddNewItem(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(apple())

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, store.TotalItems())
	assert.Equal(t, 10.0, store.TotalPrice())
}

func TestStore_AddMergesOnID(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(apple())

	// Same ID with different metadata: quantity merges, first snapshot wins.
	store.Add(product.Product{ID: "p1", Name: "Green Apple", Price: product.NewPrice(99)})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, 20.0, store.TotalPrice())
}

func TestStore_AddWithoutIDIsDropped(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(product.Product{Name: "Nameless", Price: product.NewPrice(3)})

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
}

func TestStore_SetQuantity(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add(apple())
	store.Add(apple())

	// Absolute set, not an increment.
	store.SetQuantity("p1", 5)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 50.0, store.TotalPrice())
}

func TestStore_SetQuantityZeroRemoves(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add(apple())

	store.SetQuantity("p1", 0)
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())

	store.Add(apple())
	store.SetQuantity("p1", -3)
	assert.Empty(t, store.Items())
}

func TestStore_SetQuantityAbsentIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add(apple())

	// Only Add creates entries.
	store.SetQuantity("ghost", 4)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add(apple())
	store.Add(banana())

	store.Remove("p1")
	after := store.Items()

	store.Remove("p1")
	assert.Equal(t, after, store.Items())
	require.Len(t, store.Items(), 1)
	assert.Equal(t, "p2", store.Items()[0].ID)
}

func TestStore_TotalsAcrossItems(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add(apple())
	store.Add(banana())
	store.Add(banana())
	store.Add(banana())

	assert.Equal(t, 4, store.TotalItems())
	assert.InDelta(t, 10+5.5*3, store.TotalPrice(), 1e-9)
}

func TestStore_NonNumericPriceContributesZero(t *testing.T) {
	store, _ := newTestStore(t)
	store.Add(apple())
	store.Add(product.Product{ID: "p9", Name: "Mystery", Price: product.PriceFrom("N/A")})

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, store.TotalItems())
	assert.Equal(t, 10.0, store.TotalPrice())
}

func TestStore_ClearPersistsEmptyItemsArray(t *testing.T) {
	store, slot := newTestStore(t)
	store.Add(apple())

	store.Clear()
	store.Clear() // idempotent

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())

	raw, err := slot.Get(context.Background(), StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"items":[]}`, string(raw))
}

func TestStore_PersistsAfterEveryMutation(t *testing.T) {
	store, slot := newTestStore(t)

	store.Add(apple())

	raw, err := slot.Get(context.Background(), StorageKey)
	require.NoError(t, err)

	var saved persistedState
	require.NoError(t, json.Unmarshal(raw, &saved))
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "p1", saved.Items[0].ID)
	assert.Equal(t, 1, saved.Items[0].Quantity)
}

func TestStore_RehydratesAcrossRestart(t *testing.T) {
	slot := storage.NewMemory()

	store := NewStore(slot)
	store.Add(apple())
	store.Add(apple())
	store.Add(banana())
	store.SetQuantity("p2", 3)

	// Simulated restart: a fresh store over the same slot.
	reborn := NewStore(slot)
	assert.Equal(t, store.Items(), reborn.Items())
	assert.Equal(t, 5, reborn.TotalItems())
	assert.InDelta(t, 10*2+5.5*3, reborn.TotalPrice(), 1e-9)
}

func TestStore_StartsEmptyOnCorruptSlot(t *testing.T) {
	slot := storage.NewMemory()
	require.NoError(t, slot.Set(context.Background(), StorageKey, []byte("{not json")))

	store := NewStore(slot)
	assert.Empty(t, store.Items())
}

func TestStore_LoadDropsInvalidEntries(t *testing.T) {
	slot := storage.NewMemory()
	legacy := `{"items":[
		{"id":"p1","name":"Apple","price":10,"quantity":2},
		{"id":"","name":"NoID","price":1,"quantity":1},
		{"id":"p1","name":"Dup","price":1,"quantity":1},
		{"id":"p3","name":"Gone","price":1,"quantity":0}
	]}`
	require.NoError(t, slot.Set(context.Background(), StorageKey, []byte(legacy)))

	store := NewStore(slot)
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

type failingSlot struct{}

func (failingSlot) Get(context.Context, string) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func (failingSlot) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func (failingSlot) Delete(context.Context, string) error {
	return errors.New("quota exceeded")
}

func TestStore_MutationSurvivesPersistFailure(t *testing.T) {
	store := NewStore(failingSlot{})

	store.Add(apple())

	require.Len(t, store.Items(), 1)
	assert.Equal(t, 1, store.TotalItems())
}

func TestStore_SubscribersGetSnapshots(t *testing.T) {
	store, _ := newTestStore(t)

	var got []State
	store.Subscribe(func(st State) { got = append(got, st) })

	store.Add(apple())
	store.SetQuantity("p1", 4)
	store.Clear()

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Items[0].Quantity)
	assert.Equal(t, 4, got[1].Items[0].Quantity)
	assert.Empty(t, got[2].Items)
}

func TestStore_QuantityInvariantHolds(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(apple())
	store.Add(banana())
	store.SetQuantity("p1", 3)
	store.SetQuantity("p2", -1)
	store.Add(banana())
	store.Remove("ghost")

	for _, it := range store.Items() {
		assert.GreaterOrEqual(t, it.Quantity, 1)
	}
	seen := map[string]bool{}
	for _, it := range store.Items() {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}
