package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/spendy/ledger/internal/core/domain"
	"github.com/spendy/ledger/internal/core/ports"
)

// CategoryRegistry serves built-in categories followed by persisted custom ones.
type CategoryRegistry struct {
	kv      ports.KeyValueStore
	builtin []domain.Category
}

func NewCategoryRegistry(kv ports.KeyValueStore) *CategoryRegistry {
	return &CategoryRegistry{kv: kv, builtin: domain.BuiltinCategories()}
}

// ListAll does not deduplicate names across the two lists.
func (r *CategoryRegistry) ListAll(ctx context.Context) ([]domain.Category, error) {
	custom, err := loadList[domain.Category](ctx, r.kv, KeyCustomCategories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	all := make([]domain.Category, 0, len(r.builtin)+len(custom))
	all = append(all, r.builtin...)
	return append(all, custom...), nil
}

func (r *CategoryRegistry) AddCustom(ctx context.Context, name, icon string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(icon) == "" {
		return domain.Category{}, domain.NewValidationError("icon", "is required")
	}

	custom, err := loadList[domain.Category](ctx, r.kv, KeyCustomCategories)
	if err != nil {
		return domain.Category{}, fmt.Errorf("add category: %w", err)
	}
	c := domain.Category{Name: name, Icon: icon}
	if err := storeList(ctx, r.kv, KeyCustomCategories, append(custom, c)); err != nil {
		return domain.Category{}, fmt.Errorf("add category: %w", err)
	}
	return c, nil
}

// IconFor returns the icon of the first category named name, or the fallback glyph.
func (r *CategoryRegistry) IconFor(ctx context.Context, name string) (string, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range all {
		if c.Name == name {
			return c.Icon, nil
		}
	}
	return domain.FallbackIcon, nil
}
