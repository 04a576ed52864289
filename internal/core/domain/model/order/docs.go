// Package order provides the Order aggregate root of the ordering system.
//
// The package includes:
//   - Order: customer name, table, lines with frozen unit prices, derived total and status
//   - Line: one catalog item reference, quantity and the price snapshot taken at creation
//   - Number: the human readable ORD-YYYYMMDD-NNNN identifier
//   - Status and TransitionPolicy: the lifecycle and the rule deciding which changes are accepted
//
// Key business rules:
//   - An order always has at least one line
//   - The total is computed once from the lines and never mutated
//   - Only status and updated-at change after creation
//   - Under the strict policy Delivered and Cancelled are terminal
package order
