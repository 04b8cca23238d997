package service

import (
	"context"
	"fmt"

	"github.com/spendy/ledger/internal/core/domain"
	"github.com/spendy/ledger/internal/core/ports"
)

// LedgerStore keeps transactions in insertion order under a single key.
type LedgerStore struct {
	kv ports.KeyValueStore
}

func NewLedgerStore(kv ports.KeyValueStore) *LedgerStore {
	return &LedgerStore{kv: kv}
}

func (s *LedgerStore) Append(ctx context.Context, tx domain.Transaction) error {
	txs, err := loadList[domain.Transaction](ctx, s.kv, KeyTransactions)
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	if err := storeList(ctx, s.kv, KeyTransactions, append(txs, tx)); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

// List returns a newest-first copy; the stored order is not changed.
func (s *LedgerStore) List(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := loadList[domain.Transaction](ctx, s.kv, KeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
	return txs, nil
}

func (s *LedgerStore) Remove(ctx context.Context, id string) error {
	txs, err := loadList[domain.Transaction](ctx, s.kv, KeyTransactions)
	if err != nil {
		return fmt.Errorf("remove transaction: %w", err)
	}
	kept := txs[:0]
	for _, tx := range txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	if err := storeList(ctx, s.kv, KeyTransactions, kept); err != nil {
		return fmt.Errorf("remove transaction: %w", err)
	}
	return nil
}

// Clear drops every transaction.
func (s *LedgerStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeyTransactions); err != nil {
		return fmt.Errorf("clear transactions: %w", &domain.StorageError{Op: "remove", Key: KeyTransactions, Err: err})
	}
	return nil
}
