// Package memorymanager is the persistent memory layer: a structured
// relational store of quote records plus a semantic index over their
// serialized form, correlated by record id.
package memorymanager

import (
	"context"

	"github.com/w-h-a/procurement/memorymanager/providers/storer"
)

type MemoryManager interface {
	// Initialize idempotently ensures the structured schema and the
	// semantic collection exist. Safe to call on every process start.
	Initialize(ctx context.Context) error
	// StoreQuote inserts into the structured store first and then into the
	// semantic index. A structured failure aborts the whole operation; a
	// semantic failure is logged and the structured record is kept.
	StoreQuote(ctx context.Context, rec storer.QuoteRecord) (int64, error)
	// SearchHistory returns up to limit serialized records by semantic
	// similarity, most relevant first. An empty index yields an empty
	// slice, not an error.
	SearchHistory(ctx context.Context, query string, opts ...SearchHistoryOption) ([]string, error)
	GetQuote(ctx context.Context, id int64) (*storer.QuoteRecord, error)
	ListQuotes(ctx context.Context) ([]storer.QuoteRecord, error)
	ListVendors(ctx context.Context) ([]storer.VendorPerformance, error)
	Close() error
}
