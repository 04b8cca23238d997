package ports

import (
	"context"

	"github.com/spendy/ledger/internal/core/domain"
)

// LedgerStore owns the persisted transaction collection.
type LedgerStore interface {
	Append(ctx context.Context, tx domain.Transaction) error
	// List returns transactions newest-first.
	List(ctx context.Context) ([]domain.Transaction, error)
	// Remove is a no-op for an unknown id.
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
