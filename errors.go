package cryptools

import "errors"

// Error taxonomy of the accounting core. Every failure is fatal for the run:
// each record depends on the cumulative ledger state of all prior records, so
// the first error aborts the batch with no partial output.
var (
	// ErrArithmetic reports a decimal overflow or a division by zero.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrInvalidQuantity reports an attempt to open a lot with a non-positive quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInsufficientLotBalance reports a depletion larger than a lot's remaining quantity.
	ErrInsufficientLotBalance = errors.New("insufficient lot balance")

	// ErrInsufficientFunds reports a disposal larger than an account's open-lot total.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownCurrency reports a record referencing a currency the ledger cannot resolve.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrChronologyViolation reports a record dated before its predecessor.
	ErrChronologyViolation = errors.New("chronology violation")
)
