package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/spendy/ledger/internal/core/domain"
)

func newTx(id string) domain.Transaction {
	return domain.Transaction{
		ID:       id,
		Title:    "t-" + id,
		Amount:   10,
		Category: "Food",
		Type:     domain.TypeExpense,
		Date:     time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		Icon:     "🍔",
	}
}

func TestLedgerStore_ListIsNewestFirst(t *testing.T) {
	store := NewLedgerStore(newStubKV())
	ctx := context.Background()

	_ = store.Append(ctx, newTx("a"))
	_ = store.Append(ctx, newTx("b"))

	txs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 2 || txs[0].ID != "b" || txs[1].ID != "a" {
		t.Fatalf("expected [b a], got %+v", txs)
	}
}

func TestLedgerStore_StorageKeepsInsertionOrder(t *testing.T) {
	kv := newStubKV()
	store := NewLedgerStore(kv)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_ = store.Append(ctx, newTx(id))
	}
	_, _ = store.List(ctx)
	_ = store.Remove(ctx, "b")

	stored, err := loadList[domain.Transaction](ctx, kv, KeyTransactions)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(stored) != 2 || stored[0].ID != "a" || stored[1].ID != "c" {
		t.Fatalf("expected stored [a c], got %+v", stored)
	}
}

func TestLedgerStore_AppendRemoveRoundTrip(t *testing.T) {
	store := NewLedgerStore(newStubKV())
	ctx := context.Background()
	_ = store.Append(ctx, newTx("a"))

	before, _ := store.List(ctx)
	_ = store.Append(ctx, newTx("z"))
	if err := store.Remove(ctx, "z"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	after, _ := store.List(ctx)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("round trip changed ledger: before=%+v after=%+v", before, after)
	}
}

func TestLedgerStore_RemoveUnknownID(t *testing.T) {
	store := NewLedgerStore(newStubKV())
	ctx := context.Background()
	_ = store.Append(ctx, newTx("a"))

	if err := store.Remove(ctx, "missing"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	txs, _ := store.List(ctx)
	if len(txs) != 1 {
		t.Fatalf("expected ledger unchanged, got %+v", txs)
	}
}

func TestLedgerStore_Clear(t *testing.T) {
	store := NewLedgerStore(newStubKV())
	ctx := context.Background()
	_ = store.Append(ctx, newTx("a"))

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	txs, err := store.List(ctx)
	if err != nil || len(txs) != 0 {
		t.Fatalf("expected empty ledger, got %+v %v", txs, err)
	}
}

func TestLedgerStore_StorageErrorsPropagate(t *testing.T) {
	kv := newStubKV()
	kv.getErr = errDiskFull
	store := NewLedgerStore(kv)

	if _, err := store.List(context.Background()); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage from list, got %v", err)
	}
	if err := store.Append(context.Background(), newTx("a")); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestLedgerStore_CorruptPayload(t *testing.T) {
	kv := newStubKV()
	kv.data[KeyTransactions] = "{not json"
	store := NewLedgerStore(kv)

	if _, err := store.List(context.Background()); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage for undecodable data, got %v", err)
	}
}
