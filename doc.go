// Package lansky provides the bookkeeping ledger of a resale business:
// the stock bought for resale, the sales of that stock and the business
// expenses. It is local-first: the whole ledger is a handful of JSON
// documents in a key-value store, owned by a single user.
//
// The core functionalities include:
//   - Ledger State: an immutable [State] value changed only through a fixed
//     set of commands (add, sell and delete items, delete sales, add and
//     delete expenses, update settings, seed, clear and import).
//   - Persistence: a [Store] applying each command atomically and writing a
//     full snapshot of the ledger after every change.
//   - Derivations: dashboard [Metrics], quarterly and per platform
//     breakdowns, the [TaxReport] and the CSV exports.
//
// This package serves as the foundational logic for the `lansky`
// command-line tool.
package lansky
