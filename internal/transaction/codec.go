package transaction

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"quick-meal-planner/internal/csvcodec"
)

// Expected column names in exported transaction CSVs. Names are
// exact-match, case-sensitive.
const (
	colDate          = "Date"
	colAmount        = "amount"
	colPayee         = "Payee"
	colCategory      = "category"
	colDescription   = "description"
	colAccount       = "Account"
	colCategoryGroup = "Category Group"
)

const dateLayout = "02/01/2006" // dd/MM/yyyy

// DecodeResult is the aggregate outcome of one CSV decode.
type DecodeResult struct {
	Transactions []Transaction
	Skipped      int
}

// DecodeCSV decodes raw CSV bytes into transactions using the hand-mapped
// column set. The policy decides whether a row with a bad date or amount is
// skipped (and counted) or fails the whole decode.
func DecodeCSV(data []byte, policy csvcodec.Policy) (DecodeResult, error) {
	table, err := csvcodec.Decode(data)
	if err != nil {
		return DecodeResult{}, err
	}

	result := DecodeResult{Skipped: table.Skipped}
	for i, row := range table.Rows {
		tx, err := fromRow(row, i+1)
		if err != nil {
			if policy == csvcodec.FailFast {
				return DecodeResult{}, fmt.Errorf("decoding error: %w", err)
			}
			result.Skipped++
			log.Printf("Skipping transaction row %d: %v", i+1, err)
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result, nil
}

// fromRow maps one header-zipped row to a Transaction. rowNum is 1-based
// and only used for error reporting.
func fromRow(row csvcodec.Row, rowNum int) (Transaction, error) {
	dateStr := row[colDate]
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return Transaction{}, &csvcodec.ValidationError{Row: rowNum, Field: "date", Reason: fmt.Sprintf("%q does not match dd/MM/yyyy", dateStr)}
	}

	// A missing amount defaults to zero; a present but non-numeric one is a
	// row failure.
	amount := 0.0
	if amountStr, ok := row[colAmount]; ok && amountStr != "" {
		amount, err = strconv.ParseFloat(strings.ReplaceAll(amountStr, ",", ""), 64)
		if err != nil {
			return Transaction{}, &csvcodec.ValidationError{Row: rowNum, Field: "amount", Reason: fmt.Sprintf("%q is not a number", amountStr)}
		}
	}

	payee := row[colPayee]
	if payee == "" {
		payee = "Unknown Payee"
	}
	account := row[colAccount]
	if account == "" {
		account = "Unknown Account"
	}

	return Transaction{
		ID:            uuid.NewString(),
		Date:          date,
		Payee:         payee,
		Amount:        amount,
		Category:      row[colCategory],
		Description:   row[colDescription],
		Account:       account,
		CategoryGroup: row[colCategoryGroup],
	}, nil
}

// EncodeCSV renders transactions back into the same CSV shape DecodeCSV
// reads, so a decode of the output round-trips field for field.
func EncodeCSV(txs []Transaction) []byte {
	header := []string{colDate, colAmount, colPayee, colCategory, colDescription, colAccount, colCategoryGroup}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Date.Format(dateLayout),
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Payee,
			tx.Category,
			tx.Description,
			tx.Account,
			tx.CategoryGroup,
		})
	}
	return csvcodec.Encode(header, rows)
}
