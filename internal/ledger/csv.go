package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/model"
)

// Header is the CSV header for seed and export files.
const Header = "id,date,name,amount,category,type"

const (
	numFields   = 6
	dateFormat  = time.RFC3339
	colID       = 0
	colDate     = 1
	colName     = 2
	colAmount   = 3
	colCategory = 4
	colType     = 5
)

var maxAmount = decimal.NewFromInt(MaxAmount)

// ReadTransactions reads transactions from a CSV reader. Rows keep file order.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a CSV writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colDate] = txn.Date.Format(dateFormat)
	row[colName] = txn.Name
	row[colAmount] = decimal.NewFromInt(txn.Amount).String()
	row[colCategory] = string(txn.Category)
	row[colType] = string(txn.Type)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. Amounts may carry
// a zero fraction ("2500000.00") but never a non-zero one.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if !amount.IsInteger() {
		return model.Transaction{}, fmt.Errorf("amount %q has a fractional part", record[colAmount])
	}
	if amount.GreaterThan(maxAmount) {
		return model.Transaction{}, fmt.Errorf("amount %q is too large", record[colAmount])
	}

	category, err := model.ParseCategory(record[colCategory])
	if err != nil {
		return model.Transaction{}, err
	}

	typ, err := model.ParseType(record[colType])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:       record[colID],
		Name:     record[colName],
		Amount:   amount.IntPart(),
		Category: category,
		Type:     typ,
		Date:     date,
	}, nil
}

// LoadFile reads a seed CSV from disk.
func LoadFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return txns, nil
}

// SaveFile writes transactions to path, replacing any existing file.
func SaveFile(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
