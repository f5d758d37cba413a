// Package transaction models imported financial transactions.
package transaction

import (
	"fmt"
	"math"
	"time"
)

// Transaction is one imported ledger row. Amounts are signed; negative
// values are expenses. Immutable once parsed.
type Transaction struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Payee         string    `json:"payee"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Account       string    `json:"account"`
	CategoryGroup string    `json:"category_group"`
}

// IsExpense reports whether the amount is negative.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// IsIncome reports whether the amount is positive.
func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

// FormattedAmount renders the absolute amount as currency.
func (t Transaction) FormattedAmount() string {
	return fmt.Sprintf("$%.2f", math.Abs(t.Amount))
}

// DateRange restricts transaction queries to a trailing window.
type DateRange string

const (
	LastMonth   DateRange = "Last Month"
	Last3Months DateRange = "Last 3 Months"
	Last6Months DateRange = "Last 6 Months"
	LastYear    DateRange = "Last Year"
	AllTime     DateRange = "All Time"
)

// StartDate resolves the range to a cutoff, or nil for AllTime.
func (r DateRange) StartDate(now time.Time) *time.Time {
	var start time.Time
	switch r {
	case LastMonth:
		start = now.AddDate(0, -1, 0)
	case Last3Months:
		start = now.AddDate(0, -3, 0)
	case Last6Months:
		start = now.AddDate(0, -6, 0)
	case LastYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &start
}
