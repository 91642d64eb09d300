package domain

import (
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// Entry is one executed transaction as recorded in an account's history.
type Entry struct {
	ID        string
	Kind      TransactionKind
	Amount    int64 // in centavos
	Timestamp time.Time
}

// History is the append-only transaction log owned by exactly one account.
// Entries are kept in insertion order and are never removed.
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

// Record appends an entry stamped with the current time. Only transactions
// that were actually applied may be recorded; callers enforce that.
func (h *History) Record(kind TransactionKind, amount int64) Entry {
	entry := Entry{
		ID:        uuid.New().String(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: time.Now(),
	}
	h.entries = append(h.entries, entry)
	return entry
}

// Entries returns a lazy, restartable sequence over the log in insertion
// order. A non-empty kind filters entries case-insensitively; the empty
// string yields everything.
func (h *History) Entries(kind string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, entry := range h.entries {
			if kind != "" && !strings.EqualFold(string(entry.Kind), kind) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

func (h *History) Len() int {
	return len(h.entries)
}

// CountOnDay reports how many entries of the given kind were recorded on
// the same calendar day as ref (local time).
func (h *History) CountOnDay(kind TransactionKind, ref time.Time) int {
	refY, refM, refD := ref.Date()
	count := 0
	for _, entry := range h.entries {
		if entry.Kind != kind {
			continue
		}
		y, m, d := entry.Timestamp.Date()
		if y == refY && m == refM && d == refD {
			count++
		}
	}
	return count
}
