package pocketbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound reports an update or delete targeting an id that is not in
// the collection.
var ErrNotFound = errors.New("transaction not found")

// Ledger is the transaction repository: CRUD operations and derived
// aggregates over the transaction collection stored under the
// "transactions" key.
//
// Every mutating operation is one full read of the store, an in-memory
// transform, and one full write back.
type Ledger struct {
	store *Store
}

// NewLedger returns a ledger over the given store.
func NewLedger(store *Store) *Ledger {
	return &Ledger{store: store}
}

// load returns the stored collection in insertion order. An absent blob is
// an empty collection; a corrupt blob is recovered as empty with a warning,
// never surfaced as an error.
func (l *Ledger) load() ([]Transaction, error) {
	blob, ok, err := l.store.Get(keyTransactions)
	if err != nil {
		return nil, err
	}
	if !ok || blob == "" {
		return nil, nil
	}
	var txs []Transaction
	if err := json.Unmarshal([]byte(blob), &txs); err != nil {
		log.Printf("warning: stored transactions are corrupt, starting from an empty collection: %v", err)
		return nil, nil
	}
	return txs, nil
}

// save persists the collection in insertion order.
func (l *Ledger) save(txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{}
	}
	blob, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("could not encode transactions: %w", err)
	}
	return l.store.Set(keyTransactions, string(blob))
}

// List returns all stored transactions sorted for display: most recent
// first by timestamp, falling back to the logical date for records without
// one. The sort is stable, so ties keep their insertion order.
func (l *Ledger) List() ([]Transaction, error) {
	txs, err := l.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].sortKey().After(txs[j].sortKey())
	})
	return txs, nil
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (Transaction, error) {
	txs, err := l.load()
	if err != nil {
		return Transaction{}, err
	}
	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return Transaction{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// Add validates tx, mints an id and a timestamp when missing, appends it to
// the collection, persists, and returns the stored record.
func (l *Ledger) Add(tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC().Truncate(time.Second)
	}

	txs, err := l.load()
	if err != nil {
		return Transaction{}, err
	}
	txs = append(txs, tx)
	if err := l.save(txs); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Update replaces the record matching id wholesale. It fails with
// ErrNotFound when no record has that id; there is no silent creation.
// The replacement gets a fresh timestamp so it sorts as the latest change.
func (l *Ledger) Update(id string, tx Transaction) (Transaction, error) {
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	tx.ID = id
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC().Truncate(time.Second)
	}

	txs, err := l.load()
	if err != nil {
		return Transaction{}, err
	}
	for i := range txs {
		if txs[i].ID == id {
			txs[i] = tx
			if err := l.save(txs); err != nil {
				return Transaction{}, err
			}
			return tx, nil
		}
	}
	return Transaction{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// Delete removes the record matching id and reports whether a record was
// actually removed. Deleting an unknown id leaves the collection unchanged.
func (l *Ledger) Delete(id string) (bool, error) {
	txs, err := l.load()
	if err != nil {
		return false, err
	}
	kept := txs[:0]
	removed := false
	for _, tx := range txs {
		if tx.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tx)
	}
	if !removed {
		return false, nil
	}
	return true, l.save(kept)
}

// Aggregate holds the derived totals of the transaction collection.
type Aggregate struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal // TotalIncome - TotalExpense
}

// Aggregate sums amounts by type over the whole collection. An empty
// collection yields an all-zero aggregate.
func (l *Ledger) Aggregate() (Aggregate, error) {
	txs, err := l.load()
	if err != nil {
		return Aggregate{}, err
	}
	agg := Aggregate{}
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			agg.TotalIncome = agg.TotalIncome.Add(tx.Amount)
		case Expense:
			agg.TotalExpense = agg.TotalExpense.Add(tx.Amount)
		}
	}
	agg.NetBalance = agg.TotalIncome.Sub(agg.TotalExpense)
	return agg, nil
}

// StageEdit copies the record matching id into the transient edit keys, so
// a later edit invocation can prefill from it. It returns the staged record.
func (l *Ledger) StageEdit(id string) (Transaction, error) {
	tx, err := l.Get(id)
	if err != nil {
		return Transaction{}, err
	}
	blob, err := json.Marshal(tx)
	if err != nil {
		return Transaction{}, fmt.Errorf("could not encode transaction %q: %w", id, err)
	}
	if err := l.store.Set(keyEditID, id); err != nil {
		return Transaction{}, err
	}
	if err := l.store.Set(keyEditData, string(blob)); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// StagedEdit returns the staged record, if any. Corrupt staged data clears
// the stage and behaves as if nothing were staged.
func (l *Ledger) StagedEdit() (Transaction, bool, error) {
	id, ok, err := l.store.Get(keyEditID)
	if err != nil || !ok {
		return Transaction{}, false, err
	}
	blob, ok, err := l.store.Get(keyEditData)
	if err != nil || !ok {
		return Transaction{}, false, err
	}
	var tx Transaction
	if err := json.Unmarshal([]byte(blob), &tx); err != nil {
		log.Printf("warning: staged edit data for id %q is corrupt, clearing it: %v", id, err)
		return Transaction{}, false, l.ClearStagedEdit()
	}
	return tx, true, nil
}

// ClearStagedEdit removes the transient edit keys.
func (l *Ledger) ClearStagedEdit() error {
	if err := l.store.Delete(keyEditID); err != nil {
		return err
	}
	return l.store.Delete(keyEditData)
}
