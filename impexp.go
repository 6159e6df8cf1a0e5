package pocketbook

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/jmorel/pocketbook/date"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// this file contains functions to handle the import/export formats.
// They should remain human readable, single file, and easy to merge back
// into a store.

// ExportJSON exports transactions to 'w' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one transaction in the canonical field order (id, title, amount, type,
// date, timestamp).
func ExportJSON(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("cannot marshal transaction %q: %w", tx.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write transaction export: %w", err)
		}
	}
	return nil
}

// ImportJSON imports transactions from 'r' in the import/export format.
// Lines that cannot be parsed are reported and skipped.
func ImportJSON(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			log.Printf("warning: skipping unparsable line %q: %v", string(line), err)
			continue
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read transaction import: %w", err)
	}
	return txs, nil
}

var csvHeader = []string{"id", "title", "amount", "type", "date", "timestamp"}

// ExportCSV exports transactions to 'w' as CSV with a header row.
func ExportCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, tx := range txs {
		ts := ""
		if !tx.Timestamp.IsZero() {
			ts = tx.Timestamp.UTC().Format(time.RFC3339)
		}
		row := []string{tx.ID, tx.Title, tx.Amount.String(), string(tx.Type), tx.Date.String(), ts}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write transaction %q: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV imports transactions from 'r' as CSV. The header row is
// optional. Rows that cannot be parsed are reported and skipped.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	var txs []Transaction
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("warning: skipping unparsable CSV row: %v", err)
			continue
		}
		if row[0] == "id" && row[1] == "title" {
			continue // header row
		}
		tx, err := rowTransaction(row)
		if err != nil {
			log.Printf("warning: skipping CSV row %v: %v", row, err)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func rowTransaction(row []string) (Transaction, error) {
	amount, err := decimal.NewFromString(row[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", row[2], err)
	}
	day, err := date.Parse(row[4])
	if err != nil {
		return Transaction{}, err
	}
	var ts time.Time
	if row[5] != "" {
		ts, err = time.Parse(time.RFC3339, row[5])
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid timestamp %q: %w", row[5], err)
		}
	}
	return Transaction{
		ID:        row[0],
		Title:     row[1],
		Amount:    amount,
		Type:      Type(row[3]),
		Date:      day,
		Timestamp: ts,
	}, nil
}

// ytransaction is the YAML wire shape of a transaction.
type ytransaction struct {
	ID        string `yaml:"id,omitempty"`
	Title     string `yaml:"title"`
	Amount    string `yaml:"amount"`
	Type      string `yaml:"type"`
	Date      string `yaml:"date"`
	Timestamp string `yaml:"timestamp,omitempty"`
}

// ExportYAML exports transactions to 'w' as a YAML list of records.
func ExportYAML(w io.Writer, txs []Transaction) error {
	out := make([]ytransaction, 0, len(txs))
	for _, tx := range txs {
		ts := ""
		if !tx.Timestamp.IsZero() {
			ts = tx.Timestamp.UTC().Format(time.RFC3339)
		}
		out = append(out, ytransaction{
			ID:        tx.ID,
			Title:     tx.Title,
			Amount:    tx.Amount.String(),
			Type:      string(tx.Type),
			Date:      tx.Date.String(),
			Timestamp: ts,
		})
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(out)
}

// ImportYAML imports transactions from 'r' as a YAML list of records.
// Records that cannot be parsed are reported and skipped.
func ImportYAML(r io.Reader) ([]Transaction, error) {
	var in []ytransaction
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("cannot parse YAML import: %w", err)
	}
	var txs []Transaction
	for _, y := range in {
		tx, err := rowTransaction([]string{y.ID, y.Title, y.Amount, y.Type, y.Date, y.Timestamp})
		if err != nil {
			log.Printf("warning: skipping YAML record %q: %v", y.Title, err)
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
