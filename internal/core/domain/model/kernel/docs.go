// Package kernel provides the value objects shared by the catalog and order models.
//
// The package includes:
//   - UUID: identifier of catalog items and orders, validated against the nil UUID
//   - Money: a non-negative amount with two-decimal precision backed by shopspring/decimal
//   - Clock: the source of "now" for timestamps and order-number dates
//
// Values are immutable and safe for concurrent use.
package kernel
