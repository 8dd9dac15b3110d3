package dual

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/w-h-a/procurement/memorymanager"
	"github.com/w-h-a/procurement/memorymanager/providers/storer"
)

type dualMemoryManager struct {
	options memorymanager.Options
}

func (m *dualMemoryManager) Initialize(ctx context.Context) error {
	if err := m.options.Storer.Init(ctx); err != nil {
		return fmt.Errorf("structured store init: %w", err)
	}

	if err := m.options.Indexer.EnsureCollection(ctx); err != nil {
		return fmt.Errorf("semantic index init: %w", err)
	}

	return nil
}

func (m *dualMemoryManager) StoreQuote(ctx context.Context, rec storer.QuoteRecord) (int64, error) {
	id, err := m.options.Storer.Insert(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("structured insert: %w", err)
	}

	// the structured row is authoritative; a failed semantic write leaves
	// the two stores inconsistent but is not fatal
	if err := m.index(ctx, id, rec); err != nil {
		slog.WarnContext(ctx, "semantic index write failed, structured record kept", "id", id, "error", err)
	}

	return id, nil
}

func (m *dualMemoryManager) index(ctx context.Context, id int64, rec storer.QuoteRecord) error {
	vec, err := m.options.Embedder.Embed(ctx, rec.RawJSON)
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}

	material := ""
	if rec.Material != nil {
		material = *rec.Material
	}

	metadata := map[string]any{
		"vendor":   rec.VendorName,
		"material": material,
	}

	key := fmt.Sprintf("quote_%d", id)

	return m.options.Indexer.Index(ctx, key, rec.RawJSON, metadata, vec)
}

func (m *dualMemoryManager) SearchHistory(ctx context.Context, query string, opts ...memorymanager.SearchHistoryOption) ([]string, error) {
	options := memorymanager.NewSearchHistoryOptions(opts...)

	vec, err := m.options.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	entries, err := m.options.Indexer.Search(ctx, vec, options.Limit)
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}

	results := make([]string, 0, len(entries))
	for _, entry := range entries {
		results = append(results, entry.Content)
	}

	return results, nil
}

func (m *dualMemoryManager) GetQuote(ctx context.Context, id int64) (*storer.QuoteRecord, error) {
	return m.options.Storer.Get(ctx, id)
}

func (m *dualMemoryManager) ListQuotes(ctx context.Context) ([]storer.QuoteRecord, error) {
	return m.options.Storer.List(ctx)
}

func (m *dualMemoryManager) ListVendors(ctx context.Context) ([]storer.VendorPerformance, error) {
	return m.options.Storer.Vendors(ctx)
}

func (m *dualMemoryManager) Close() error {
	return errors.Join(
		m.options.Indexer.Close(),
		m.options.Storer.Close(),
	)
}

func NewMemoryManager(opts ...memorymanager.Option) memorymanager.MemoryManager {
	options := memorymanager.NewOptions(opts...)

	if options.Storer == nil || options.Indexer == nil || options.Embedder == nil {
		panic("missing storer, indexer, or embedder for memory manager")
	}

	m := &dualMemoryManager{
		options: options,
	}

	return m
}
