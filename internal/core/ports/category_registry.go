package ports

import (
	"context"

	"github.com/spendy/ledger/internal/core/domain"
)

// CategoryRegistry merges the built-in categories with user-defined ones.
type CategoryRegistry interface {
	ListAll(ctx context.Context) ([]domain.Category, error)
	AddCustom(ctx context.Context, name, icon string) (domain.Category, error)
	IconFor(ctx context.Context, name string) (string, error)
}
