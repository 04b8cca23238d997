package ports

import (
	"context"
	"time"

	"github.com/spendy/ledger/internal/core/aggregate"
	"github.com/spendy/ledger/internal/core/domain"
)

// RecordInput carries the raw form values of a new transaction.
type RecordInput struct {
	Title    string
	Amount   string
	Category string
	Type     string
	Date     time.Time // zero means now
}

// LedgerService defines use-case operations over the ledger.
type LedgerService interface {
	Record(ctx context.Context, in RecordInput) (*domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Overview(ctx context.Context, year int, month time.Month) (aggregate.Overview, error)
	Categories(ctx context.Context) (aggregate.Summary, error)
}
