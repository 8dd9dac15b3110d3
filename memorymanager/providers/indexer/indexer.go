package indexer

import "context"

// Indexer is the semantic (similarity-search) backing store. Entries are
// keyed by the caller so they stay traceable to their structured rows.
type Indexer interface {
	EnsureCollection(ctx context.Context) error
	Index(ctx context.Context, key string, content string, metadata map[string]any, vector []float32) error
	Search(ctx context.Context, vector []float32, limit int) ([]Entry, error)
	Close() error
}

type Entry struct {
	Key      string
	Content  string
	Metadata map[string]any
	Score    float32
}
