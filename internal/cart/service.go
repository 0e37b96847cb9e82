package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/threadline-co/threadline-backend/internal/catalog"
	"github.com/threadline-co/threadline-backend/internal/storage"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
)

// SnapshotStore is the persistence surface the cart writes through to.
type SnapshotStore interface {
	Load(ctx context.Context, clientID, name string) ([]byte, bool, error)
	Save(ctx context.Context, clientID, name string, payload []byte) error
}

// Service owns per-client cart state. Every mutation is a synchronous
// state transition followed by a write-through of the item snapshot.
// Invalid input degrades to a safe no-op; no cart rule ever raises.
type Service interface {
	Get(ctx context.Context, clientID string) (CartDTO, error)
	AddItem(ctx context.Context, clientID string, product catalog.Product, input AddItemInput) (CartDTO, error)
	RemoveItem(ctx context.Context, clientID, productID string) (CartDTO, error)
	UpdateQuantity(ctx context.Context, clientID, productID string, quantity int) (CartDTO, error)
	Clear(ctx context.Context, clientID string) (CartDTO, error)
	Toggle(ctx context.Context, clientID string) (CartDTO, error)
	TotalItems(ctx context.Context, clientID string) (int, error)
	TotalPrice(ctx context.Context, clientID string) (decimal.Decimal, error)
	ItemQuantity(ctx context.Context, clientID, productID string) (int, error)
}

type state struct {
	items  []Item
	isOpen bool
}

type service struct {
	mu    sync.Mutex
	store SnapshotStore
	carts map[string]*state
}

// NewService builds a cart service persisting through the given store.
func NewService(store SnapshotStore) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "snapshot store is required")
	}
	return &service{
		store: store,
		carts: map[string]*state{},
	}, nil
}

// Get returns the current cart view, restoring persisted items on the
// first touch of a client.
func (s *service) Get(ctx context.Context, clientID string) (CartDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateFor(ctx, clientID)
	if err != nil {
		return CartDTO{}, err
	}
	return dtoFor(st), nil
}

// AddItem merges the product into the cart. An existing line grows by
// the requested quantity and keeps its original price snapshot; a new
// line captures the product's price at call time. Non-positive
// quantities fall back to the documented default of one.
func (s *service) AddItem(ctx context.Context, clientID string, product catalog.Product, input AddItemInput) (CartDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateFor(ctx, clientID)
	if err != nil {
		return CartDTO{}, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	if i := indexOf(st.items, product.ID); i >= 0 {
		st.items[i].Quantity += quantity
	} else {
		st.items = append(st.items, Item{
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
			Price:     product.Price,
			Size:      input.Size,
			Color:     input.Color,
		})
	}

	if err := s.persist(ctx, clientID, st); err != nil {
		return CartDTO{}, err
	}
	return dtoFor(st), nil
}

// RemoveItem drops the line if present; unknown ids are a no-op.
func (s *service) RemoveItem(ctx context.Context, clientID, productID string) (CartDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateFor(ctx, clientID)
	if err != nil {
		return CartDTO{}, err
	}

	st.items = removeLine(st.items, productID)

	if err := s.persist(ctx, clientID, st); err != nil {
		return CartDTO{}, err
	}
	return dtoFor(st), nil
}

// UpdateQuantity sets the line's quantity outright. A quantity at or
// below zero removes the line instead of storing a zero-quantity
// record; an unknown id updates nothing.
func (s *service) UpdateQuantity(ctx context.Context, clientID, productID string, quantity int) (CartDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateFor(ctx, clientID)
	if err != nil {
		return CartDTO{}, err
	}

	if quantity <= 0 {
		st.items = removeLine(st.items, productID)
	} else if i := indexOf(st.items, productID); i >= 0 {
		st.items[i].Quantity = quantity
	}

	if err := s.persist(ctx, clientID, st); err != nil {
		return CartDTO{}, err
	}
	return dtoFor(st), nil
}

// Clear empties every line but leaves the open flag alone.
func (s *service) Clear(ctx context.Context, clientID string) (CartDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateFor(ctx, clientID)
	if err != nil {
		return CartDTO{}, err
	}

	st.items = nil

	if err := s.persist(ctx, clientID, st); err != nil {
		return CartDTO{}, err
	}
	return dtoFor(st), nil
}

// Toggle flips the transient cart drawer flag. The flag is never
// persisted, so no write-through happens here.
func (s *service) Toggle(ctx context.Context, clientID string) (CartDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateFor(ctx, clientID)
	if err != nil {
		return CartDTO{}, err
	}

	st.isOpen = !st.isOpen
	return dtoFor(st), nil
}

// TotalItems sums the line quantities.
func (s *service) TotalItems(ctx context.Context, clientID string) (int, error) {
	dto, err := s.Get(ctx, clientID)
	if err != nil {
		return 0, err
	}
	return dto.TotalItems, nil
}

// TotalPrice sums price-at-add times quantity over all lines.
func (s *service) TotalPrice(ctx context.Context, clientID string) (decimal.Decimal, error) {
	dto, err := s.Get(ctx, clientID)
	if err != nil {
		return decimal.Zero, err
	}
	return dto.TotalPrice, nil
}

// ItemQuantity reports the line's quantity, zero when absent.
func (s *service) ItemQuantity(ctx context.Context, clientID, productID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateFor(ctx, clientID)
	if err != nil {
		return 0, err
	}
	if i := indexOf(st.items, productID); i >= 0 {
		return st.items[i].Quantity, nil
	}
	return 0, nil
}

func (s *service) stateFor(ctx context.Context, clientID string) (*state, error) {
	if st, ok := s.carts[clientID]; ok {
		return st, nil
	}

	st := &state{}
	payload, found, err := s.store.Load(ctx, clientID, storage.CartRecordName)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}
	if found {
		var snap snapshot
		if err := json.Unmarshal(payload, &snap); err == nil {
			st.items = snap.Items
		}
		// A snapshot that fails to decode starts the client fresh;
		// the next write-through replaces it.
	}

	s.carts[clientID] = st
	return st, nil
}

func (s *service) persist(ctx context.Context, clientID string, st *state) error {
	payload, err := json.Marshal(snapshot{Items: append([]Item{}, st.items...)})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	if err := s.store.Save(ctx, clientID, storage.CartRecordName, payload); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart snapshot")
	}
	return nil
}

func dtoFor(st *state) CartDTO {
	items := make([]Item, len(st.items))
	copy(items, st.items)

	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.LineTotal())
	}

	return CartDTO{
		Items:      items,
		IsOpen:     st.isOpen,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}

func indexOf(items []Item, productID string) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func removeLine(items []Item, productID string) []Item {
	out := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}
