// Package arbfolio turns the account-activity exports of a single observed
// address into an auditable record of value movements, categorized events and
// realized gains.
//
// The processing is a chain of pure transformations:
//   - Normalization: every raw export row (token transfer, native transaction,
//     internal transaction) becomes one directional [Transfer] relative to the
//     observed address.
//   - Netting: transfers sharing a group (transaction hash) and a token are
//     merged into a single net transfer; washes vanish.
//   - USD enrichment: two-legged swaps against a stable priced token get their
//     missing USD leg derived, then operator overrides take precedence.
//   - Classification: each group is assigned a [Category], swaps are refined
//     into Simple, TwoAsset or Debt shapes.
//   - Cost basis: net transfers feed a per-token FIFO queue of lots producing
//     realized [Sale] records.
//
// All amounts are exact decimals. This package performs no I/O, reference
// tables and raw rows are handed over as plain data by the `ingest` and
// `refdata` packages, and results are serialized by the `arbf` command.
package arbfolio
