package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/threadline-co/threadline-backend/internal/catalog"
	pkgerrors "github.com/threadline-co/threadline-backend/pkg/errors"
)

type stubSnapshotStore struct {
	records map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newStubSnapshotStore() *stubSnapshotStore {
	return &stubSnapshotStore{records: map[string][]byte{}}
}

func (s *stubSnapshotStore) key(clientID, name string) string {
	return clientID + "/" + name
}

func (s *stubSnapshotStore) Load(_ context.Context, clientID, name string) ([]byte, bool, error) {
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	payload, ok := s.records[s.key(clientID, name)]
	return payload, ok, nil
}

func (s *stubSnapshotStore) Save(_ context.Context, clientID, name string, payload []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.records[s.key(clientID, name)] = payload
	return nil
}

func testProduct(id, priceStr string) catalog.Product {
	return catalog.Product{
		ID:      id,
		Name:    "product " + id,
		Price:   decimal.RequireFromString(priceStr),
		BrandID: "b1",
		InStock: true,
	}
}

func newTestService(t *testing.T, store SnapshotStore) Service {
	t.Helper()
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("new cart service: %v", err)
	}
	return svc
}

func TestAddItemAggregatesSameProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()
	product := testProduct("p1", "10")

	if _, err := svc.AddItem(ctx, "c1", product, AddItemInput{Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "c1", product, AddItemInput{Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.AddItem(ctx, "c1", product, AddItemInput{Quantity: 4})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(dto.Items) != 1 {
		t.Fatalf("expected exactly one line, got %d", len(dto.Items))
	}
	if dto.TotalItems != 7 {
		t.Fatalf("expected 7 total items, got %d", dto.TotalItems)
	}
}

func TestAddItemDefaultsNonPositiveQuantityToOne(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	dto, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: -3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if dto.TotalItems != 1 {
		t.Fatalf("expected quantity to default to 1, got %d", dto.TotalItems)
	}
}

func TestPriceSnapshotSurvivesCatalogChange(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	product := testProduct("p1", "10")
	if _, err := svc.AddItem(ctx, "c1", product, AddItemInput{Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// The "catalog" now charges more; the existing line keeps the price
	// captured at add time.
	repriced := testProduct("p1", "25")
	dto, err := svc.AddItem(ctx, "c1", repriced, AddItemInput{Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(dto.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(dto.Items))
	}
	if !dto.Items[0].Price.Equal(decimal.RequireFromString("10")) {
		t.Fatalf("price snapshot was refreshed: %s", dto.Items[0].Price)
	}
	if !dto.TotalPrice.Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected total 20, got %s", dto.TotalPrice)
	}
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	t.Parallel()

	for _, quantity := range []int{0, -5} {
		svc := newTestService(t, newStubSnapshotStore())
		ctx := context.Background()

		if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 2}); err != nil {
			t.Fatalf("add: %v", err)
		}
		dto, err := svc.UpdateQuantity(ctx, "c1", "p1", quantity)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if len(dto.Items) != 0 {
			t.Fatalf("quantity %d should remove the line, got %d lines", quantity, len(dto.Items))
		}
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	dto, err := svc.UpdateQuantity(ctx, "c1", "p1", 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.TotalItems != 5 {
		t.Fatalf("expected absolute set to 5, got %d", dto.TotalItems)
	}
}

func TestUpdateQuantityUnknownProductIsSilentNoop(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Updating an id that was never added changes nothing and raises
	// nothing.
	dto, err := svc.UpdateQuantity(ctx, "c1", "ghost", 9)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.TotalItems != 2 || len(dto.Items) != 1 {
		t.Fatalf("unknown id should update nothing, got %+v", dto)
	}
}

func TestRemoveItemUnknownProductIsNoop(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	dto, err := svc.RemoveItem(ctx, "c1", "ghost")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(dto.Items))
	}
}

func TestTotals(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "c1", testProduct("p2", "5"), AddItemInput{Quantity: 3}); err != nil {
		t.Fatalf("add: %v", err)
	}

	totalItems, err := svc.TotalItems(ctx, "c1")
	if err != nil {
		t.Fatalf("total items: %v", err)
	}
	if totalItems != 5 {
		t.Fatalf("expected 5 items, got %d", totalItems)
	}

	totalPrice, err := svc.TotalPrice(ctx, "c1")
	if err != nil {
		t.Fatalf("total price: %v", err)
	}
	if !totalPrice.Equal(decimal.RequireFromString("35")) {
		t.Fatalf("expected total 35, got %s", totalPrice)
	}
}

func TestItemQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 4}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got, _ := svc.ItemQuantity(ctx, "c1", "p1"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got, _ := svc.ItemQuantity(ctx, "c1", "ghost"); got != 0 {
		t.Fatalf("absent line should report 0, got %d", got)
	}
}

func TestClearEmptiesLinesButKeepsOpenFlag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Toggle(ctx, "c1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	dto, err := svc.Clear(ctx, "c1")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("expected empty cart after clear")
	}
	if !dto.IsOpen {
		t.Fatalf("clear must not touch the open flag")
	}
}

func TestToggleFlipsOpenFlag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	dto, err := svc.Toggle(ctx, "c1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !dto.IsOpen {
		t.Fatalf("expected open after first toggle")
	}

	dto, err = svc.Toggle(ctx, "c1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if dto.IsOpen {
		t.Fatalf("expected closed after second toggle")
	}
}

func TestCartsAreIsolatedPerClient(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubSnapshotStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	dto, err := svc.Get(ctx, "c2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("client c2 should start empty")
	}
}

func TestPersistenceRoundTripRestoresItemsNotOpenFlag(t *testing.T) {
	t.Parallel()

	store := newStubSnapshotStore()
	ctx := context.Background()

	svc := newTestService(t, store)
	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Toggle(ctx, "c1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// A restart is a fresh service over the same storage.
	restarted := newTestService(t, store)
	dto, err := restarted.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get after restart: %v", err)
	}

	if len(dto.Items) != 1 || dto.Items[0].ProductID != "p1" || dto.Items[0].Quantity != 2 {
		t.Fatalf("restart lost cart items: %+v", dto.Items)
	}
	if dto.IsOpen {
		t.Fatalf("open flag must reset after restart")
	}
}

func TestCorruptSnapshotStartsFresh(t *testing.T) {
	t.Parallel()

	store := newStubSnapshotStore()
	store.records[store.key("c1", "cart-storage")] = []byte("{not json")

	svc := newTestService(t, store)
	dto, err := svc.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("corrupt snapshot should yield an empty cart")
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	t.Parallel()

	store := newStubSnapshotStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "c1", testProduct("p1", "10"), AddItemInput{Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, "c1", "p1", 3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.Clear(ctx, "c1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if store.saves != 3 {
		t.Fatalf("expected a write per mutation, got %d", store.saves)
	}
}

func TestSaveFailureSurfacesAsDependencyError(t *testing.T) {
	t.Parallel()

	store := newStubSnapshotStore()
	store.saveErr = errors.New("disk gone")
	svc := newTestService(t, store)

	_, err := svc.AddItem(context.Background(), "c1", testProduct("p1", "10"), AddItemInput{Quantity: 1})
	if err == nil {
		t.Fatal("expected save failure to surface")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error code: %v", err)
	}
}
