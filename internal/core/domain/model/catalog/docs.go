// Package catalog models the venue menu: purchasable items with a category, a current
// price and an availability flag.
//
// The order model never owns catalog items. It reads an item once, when an order line is
// priced, and keeps its own frozen copy of the unit price afterwards.
package catalog
