package cryptools

import (
	"fmt"
	"iter"
	"strings"

	"github.com/scoobybejesus/cryptools/date"
)

// TxKind is the kind of an imported transaction line.
type TxKind int

const (
	// Trade exchanges one currency for another: a disposal of the outgoing
	// currency and an acquisition of the incoming one in the same transaction.
	Trade TxKind = iota + 1
	// Income is an acquisition with no consideration given; basis is the
	// fair-market value supplied by the record.
	Income
	// Expense is a disposal with nothing acquired in return.
	Expense
	// TransferIn is an acquisition from outside the imported history.
	TransferIn
	// TransferOut is a disposal to outside the imported history.
	TransferOut
)

func (k TxKind) String() string {
	switch k {
	case Trade:
		return "trade"
	case Income:
		return "income"
	case Expense:
		return "expense"
	case TransferIn:
		return "transfer-in"
	case TransferOut:
		return "transfer-out"
	default:
		return "unknown"
	}
}

// ParseTxKind parses an imported kind column value.
func ParseTxKind(s string) (TxKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trade":
		return Trade, nil
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	case "transfer-in", "transfer_in", "transferin":
		return TransferIn, nil
	case "transfer-out", "transfer_out", "transferout":
		return TransferOut, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind %q", s)
	}
}

// HasDisposal reports whether the kind gives up currency.
func (k TxKind) HasDisposal() bool { return k == Trade || k == Expense || k == TransferOut }

// HasAcquisition reports whether the kind receives currency.
func (k TxKind) HasAcquisition() bool { return k == Trade || k == Income || k == TransferIn }

// ActionRecord is one imported transaction line, normalized and immutable.
// The engine relies on records being processed in non-decreasing date order.
type ActionRecord struct {
	ID   uint32 // sequence id, assigned in input order starting at 1
	Date date.Date
	Kind TxKind

	// Outgoing side, set when Kind.HasDisposal().
	OutCurrency string
	OutQuantity Quantity

	// Incoming side, set when Kind.HasAcquisition().
	InCurrency string
	InQuantity Quantity

	// Value is the home-currency value of the consideration: proceeds for a
	// disposal, basis for an acquisition, fair-market value for income. It is
	// supplied by the input, never computed here.
	Value Money

	Memo string
}

// Validate checks the record's internal consistency against its kind.
func (a *ActionRecord) Validate(s *Settings) error {
	if a.Kind.HasDisposal() {
		if a.OutCurrency == "" {
			return fmt.Errorf("record %d (%s): no outgoing currency: %w", a.ID, a.Kind, ErrUnknownCurrency)
		}
		if !a.OutQuantity.IsPositive() {
			return fmt.Errorf("record %d (%s): outgoing quantity %s: %w", a.ID, a.Kind, a.OutQuantity, ErrInvalidQuantity)
		}
	}
	if a.Kind.HasAcquisition() {
		if a.InCurrency == "" {
			return fmt.Errorf("record %d (%s): no incoming currency: %w", a.ID, a.Kind, ErrUnknownCurrency)
		}
		if !a.InQuantity.IsPositive() {
			return fmt.Errorf("record %d (%s): incoming quantity %s: %w", a.ID, a.Kind, a.InQuantity, ErrInvalidQuantity)
		}
	}
	if c := a.Value.Currency(); c != "" && !s.IsHome(c) {
		return fmt.Errorf("record %d: value denominated in %q, home currency is %q: %w", a.ID, c, s.HomeCurrency, ErrUnknownCurrency)
	}
	return nil
}

// ActionStore holds the normalized transaction inputs keyed by sequence id,
// iterated in input order. It is append-only.
type ActionStore struct {
	records []*ActionRecord
	byID    map[uint32]*ActionRecord
}

// NewActionStore creates an empty store.
func NewActionStore() *ActionStore {
	return &ActionStore{byID: make(map[uint32]*ActionRecord)}
}

// Append adds a record to the store. Sequence ids must be unique.
func (s *ActionStore) Append(a *ActionRecord) error {
	if _, dup := s.byID[a.ID]; dup {
		return fmt.Errorf("duplicate action record id %d", a.ID)
	}
	s.records = append(s.records, a)
	s.byID[a.ID] = a
	return nil
}

// Get returns the record with the given sequence id, or nil.
func (s *ActionStore) Get(id uint32) *ActionRecord { return s.byID[id] }

// Len returns the number of records.
func (s *ActionStore) Len() int { return len(s.records) }

// All iterates the records in input order.
func (s *ActionStore) All() iter.Seq[*ActionRecord] {
	return func(yield func(*ActionRecord) bool) {
		for _, a := range s.records {
			if !yield(a) {
				return
			}
		}
	}
}
