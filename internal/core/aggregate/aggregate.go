// Package aggregate derives totals and chart series from a snapshot of the
// ledger. Every function is pure: inputs are only read, never retained.
package aggregate

import (
	"time"

	"github.com/spendy/ledger/internal/core/domain"
)

// TotalByType sums the amounts of transactions of type t.
func TotalByType(txs []domain.Transaction, t domain.TransactionType) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Type == t {
			sum += tx.Amount
		}
	}
	return sum
}

// Balance is total income minus total expense.
func Balance(txs []domain.Transaction) float64 {
	return TotalByType(txs, domain.TypeIncome) - TotalByType(txs, domain.TypeExpense)
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
	Share    float64 `json:"share"` // percent of Summary.Total
}

// Summary is the expense-by-category breakdown.
type Summary struct {
	Total      float64         `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

// CategorySummary groups expense transactions by category. Income is left out.
// Categories keep the order in which they first appear in txs.
func CategorySummary(txs []domain.Transaction) Summary {
	index := make(map[string]int)
	out := Summary{Categories: []CategoryTotal{}}

	for _, tx := range txs {
		if tx.Type != domain.TypeExpense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(out.Categories)
			index[tx.Category] = i
			out.Categories = append(out.Categories, CategoryTotal{Category: tx.Category})
		}
		out.Categories[i].Count++
		out.Categories[i].Total += tx.Amount
		out.Total += tx.Amount
	}

	if out.Total > 0 {
		for i := range out.Categories {
			out.Categories[i].Share = out.Categories[i].Total / out.Total * 100
		}
	}
	return out
}

// DailySeries holds one amount per day of a month; element 0 is day 1.
type DailySeries []float64

// Day returns the amount for the 1-based day of month, or 0 when out of range.
func (s DailySeries) Day(day int) float64 {
	if day < 1 || day > len(s) {
		return 0
	}
	return s[day-1]
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Daily buckets transactions of every type by calendar day of the given month,
// using each transaction's date as seen in loc. A nil loc means time.Local.
func Daily(txs []domain.Transaction, year int, month time.Month, loc *time.Location) DailySeries {
	if loc == nil {
		loc = time.Local
	}
	series := make(DailySeries, DaysIn(year, month))
	for _, tx := range txs {
		d := tx.Date.In(loc)
		if d.Year() != year || d.Month() != month {
			continue
		}
		series[d.Day()-1] += tx.Amount
	}
	return series
}

// Overview is the dashboard card plus its chart.
type Overview struct {
	Year    int         `json:"year"`
	Month   time.Month  `json:"month"`
	Income  float64     `json:"income"`
	Expense float64     `json:"expense"`
	Balance float64     `json:"balance"`
	Daily   DailySeries `json:"daily"`
}

// NewOverview computes totals over all of txs and the daily series for year/month.
func NewOverview(txs []domain.Transaction, year int, month time.Month, loc *time.Location) Overview {
	income := TotalByType(txs, domain.TypeIncome)
	expense := TotalByType(txs, domain.TypeExpense)
	return Overview{
		Year:    year,
		Month:   month,
		Income:  income,
		Expense: expense,
		Balance: income - expense,
		Daily:   Daily(txs, year, month, loc),
	}
}
