// Package services provides domain services that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - PriceSnapshotResolver: turns a catalog item reference into the price frozen on an order line
//   - SalesAggregator: ranks per-item sales tallies and joins them with catalog metadata
package services
