package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"clickmart/internal/logger"
	"clickmart/internal/product"
	"clickmart/internal/storage"

	"go.uber.org/zap"
)

// StorageKey is the fixed slot the cart mirrors itself into.
const StorageKey = "click-mart-cart"

const schemaVersion = 1

// persistedState is the on-disk envelope. Version is written for forward
// compatibility but not required on read, so pre-versioning carts still load.
type persistedState struct {
	Version int    `json:"version,omitempty"`
	Items   []Item `json:"items"`
}

// Store owns the in-memory cart and keeps it mirrored to a durable slot
// after every mutation. Mutations never fail: malformed input degrades to
// safe defaults and a failed storage write is logged, never surfaced — an
// add-to-cart tap must not bounce because of a quota error.
type Store struct {
	mu    sync.Mutex
	items []Item
	slot  storage.Store
	subs  []func(State)
}

// NewStore rehydrates the cart from the slot. An absent or unreadable value
// yields an empty cart instead of a startup error.
func NewStore(slot storage.Store) *Store {
	s := &Store{slot: slot, items: []Item{}}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.slot.Get(context.Background(), StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		logger.L().Warn("cart load failed, starting empty", zap.Error(err))
		return
	}

	var saved persistedState
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.L().Warn("stored cart unreadable, starting empty", zap.Error(err))
		return
	}

	// Legacy data may violate the invariants; drop offending entries
	// rather than refusing the whole cart.
	seen := make(map[string]bool, len(saved.Items))
	items := make([]Item, 0, len(saved.Items))
	for _, it := range saved.Items {
		if it.ID == "" || it.Quantity <= 0 || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		items = append(items, it)
	}
	s.items = items
}

// Add merges by ID: a product already in the cart only gains quantity 1,
// keeping the snapshot fields from its first add. A new product enters
// with quantity 1. Products without an ID are dropped with a warning.
func (s *Store) Add(p product.Product) {
	if p.ID == "" {
		logger.L().Warn("dropping cart add without product id", zap.String("name", p.Name))
		return
	}

	s.mu.Lock()
	if i := s.index(p.ID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, Item{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			Category:      p.Category,
			Rating:        p.Rating,
			Reviews:       p.Reviews,
			Quantity:      1,
		})
	}
	state, subs := s.commitLocked()
	s.mu.Unlock()

	notify(subs, state)
}

// Remove deletes the item with the given ID. Removing an absent ID is a
// no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if i := s.index(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	state, subs := s.commitLocked()
	s.mu.Unlock()

	notify(subs, state)
}

// SetQuantity sets the item's quantity to exactly the given value. A value
// of zero or less removes the item. An absent ID is a no-op; only Add
// creates entries.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	if i := s.index(id); i >= 0 {
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
	}
	state, subs := s.commitLocked()
	s.mu.Unlock()

	notify(subs, state)
}

// Clear empties the cart and the persisted copy. Logout flows are expected
// to call this explicitly.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = []Item{}
	state, subs := s.commitLocked()
	s.mu.Unlock()

	notify(subs, state)
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItemsLocked()
}

// TotalItems is the sum of quantities across all line items.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across all line items.
// Unparsable prices contribute 0 instead of poisoning the total.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, it := range s.items {
		total += it.Price.Float64() * float64(it.Quantity)
	}
	return total
}

// Subscribe registers fn to receive a state snapshot after every mutation.
// Callbacks run on the mutating goroutine, outside the store's lock.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// commitLocked mirrors the current state to the slot and returns the
// snapshot plus the subscriber list to notify. Caller must hold mu.
func (s *Store) commitLocked() (State, []func(State)) {
	state := State{Items: s.copyItemsLocked()}

	data, err := json.Marshal(persistedState{Version: schemaVersion, Items: state.Items})
	if err != nil {
		logger.L().Error("cart state not serializable", zap.Error(err))
	} else if err := s.slot.Set(context.Background(), StorageKey, data); err != nil {
		// In-memory state already reflects the mutation; persistence is
		// best effort.
		logger.L().Warn("cart persist failed", zap.Error(err))
	}

	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	return state, subs
}

func (s *Store) copyItemsLocked() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func notify(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}
