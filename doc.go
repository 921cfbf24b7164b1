// Package cryptools turns a chronological ledger of cryptocurrency
// transactions into tax-relevant accounting records.
//
// The core functionalities include:
//   - Action Records: the normalized, time-ordered transaction inputs, one per
//     imported row, held in an append-only store keyed by sequence id.
//   - Account & Lot Ledger: one account per currency (the home fiat currency
//     included), each owning an ordered collection of cost-basis lots that are
//     mutable only through movements.
//   - Lot Selection: a configurable inventory-costing policy (LIFO/FIFO by
//     lot-creation order or by basis date) deciding which open lots a disposal
//     depletes.
//   - Costing Engine: a single chronological pass over the action records that
//     opens lots on acquisitions, depletes lots on disposals, computes realized
//     proceeds, cost basis, and gain or loss with exact decimal arithmetic, and
//     applies like-kind basis carryover for qualifying exchanges before a
//     configured cutover date.
//   - Transaction Records: the derived, enriched outputs (movements, proceeds,
//     basis, gain or loss) handed to exporters and report renderers.
//
// This package serves as the foundational logic for the `cryptools`
// command-line tool. All monetary and quantity arithmetic is decimal; the run
// is a synchronous batch that either completes or aborts on the first error.
package cryptools
