package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spendy/ledger/internal/core/aggregate"
	"github.com/spendy/ledger/internal/core/domain"
	"github.com/spendy/ledger/internal/core/ports"
)

// LedgerService turns form input into transactions and serves the derived views.
type LedgerService struct {
	ledger     ports.LedgerStore
	categories ports.CategoryRegistry
	loc        *time.Location
	now        func() time.Time
	log        zerolog.Logger
}

func NewLedgerService(ledger ports.LedgerStore, categories ports.CategoryRegistry, loc *time.Location, log zerolog.Logger) *LedgerService {
	if loc == nil {
		loc = time.Local
	}
	return &LedgerService{
		ledger:     ledger,
		categories: categories,
		loc:        loc,
		now:        time.Now,
		log:        log,
	}
}

// Record validates in, snapshots the category icon and appends the transaction.
func (s *LedgerService) Record(ctx context.Context, in ports.RecordInput) (*domain.Transaction, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	typ := domain.TransactionType(in.Type)
	if !typ.Valid() {
		return nil, domain.NewValidationError("type", "must be one of: income expense")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.DefaultCategory
	}
	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	icon, err := s.categories.IconFor(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	tx := domain.Transaction{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   amount,
		Category: category,
		Type:     typ,
		Date:     date.UTC(),
		Icon:     icon,
	}
	if err := s.ledger.Append(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("id", tx.ID).
		Str("type", string(tx.Type)).
		Str("category", tx.Category).
		Float64("amount", tx.Amount).
		Msg("transaction recorded")
	return &tx, nil
}

func (s *LedgerService) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.ledger.List(ctx)
}

func (s *LedgerService) Delete(ctx context.Context, id string) error {
	if err := s.ledger.Remove(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("transaction deleted")
	return nil
}

func (s *LedgerService) Clear(ctx context.Context) error {
	if err := s.ledger.Clear(ctx); err != nil {
		return err
	}
	s.log.Warn().Msg("all transactions cleared")
	return nil
}

// Overview computes dashboard totals and the daily series for year/month.
// A zero year or month is replaced by the current one.
func (s *LedgerService) Overview(ctx context.Context, year int, month time.Month) (aggregate.Overview, error) {
	if month != 0 && (month < time.January || month > time.December) {
		return aggregate.Overview{}, domain.NewValidationError("month", "must be between 1 and 12")
	}
	now := s.now().In(s.loc)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	txs, err := s.ledger.List(ctx)
	if err != nil {
		return aggregate.Overview{}, err
	}
	return aggregate.NewOverview(txs, year, month, s.loc), nil
}

func (s *LedgerService) Categories(ctx context.Context) (aggregate.Summary, error) {
	txs, err := s.ledger.List(ctx)
	if err != nil {
		return aggregate.Summary{}, err
	}
	return aggregate.CategorySummary(txs), nil
}

// parseAmount accepts the raw amount text of the form. Only finite, positive
// numbers are allowed.
func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.NewValidationError("amount", "is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.NewValidationError("amount", "must be a number")
	}
	if v <= 0 {
		return 0, domain.NewValidationError("amount", "must be greater than 0")
	}
	return v, nil
}
