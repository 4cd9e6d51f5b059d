// Package grocery provides the core types and operations for managing a
// small retail store inventory. It is designed to be local-first and
// auditable: the whole product table lives in a single human-readable CSV
// file that is rewritten after every successful mutation.
//
// The core functionalities include:
//   - Inventory Ledger: an in-memory table of products supporting
//     registration, update, deletion, restocking, search and multi-item
//     sales, each guarded by validation rules that keep names unique and
//     quantities non-negative.
//   - Sales Transactions: multi-line sales processed item by item, with
//     per-line outcomes (sold, not found, invalid quantity, insufficient
//     stock) collected into a printable receipt.
//   - Data Persistence: full-table load and atomic save of the backing
//     CSV file, with typed errors identifying corrupt rows.
//
// This package serves as the foundational logic for the `gms` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package grocery
