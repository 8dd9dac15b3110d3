package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/w-h-a/procurement/memorymanager"
	"github.com/w-h-a/procurement/memorymanager/providers/indexer"
)

type entry struct {
	indexer.Entry
	embedding []float32
}

type memoryIndexer struct {
	options indexer.Options
	entries map[string]entry
	mtx     sync.RWMutex
}

func (s *memoryIndexer) EnsureCollection(ctx context.Context) error {
	return nil
}

func (s *memoryIndexer) Index(ctx context.Context, key string, content string, metadata map[string]any, vector []float32) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cpy := make([]float32, len(vector))
	copy(cpy, vector)

	s.entries[key] = entry{
		Entry: indexer.Entry{
			Key:      key,
			Content:  content,
			Metadata: metadata,
		},
		embedding: cpy,
	}

	return nil
}

func (s *memoryIndexer) Search(ctx context.Context, vector []float32, limit int) ([]indexer.Entry, error) {
	if limit < 1 {
		return nil, nil
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	candidates := make([]indexer.Entry, 0, len(s.entries))

	for _, e := range s.entries {
		score := memorymanager.CosineSimilarity(vector, e.embedding)
		result := e.Entry
		result.Score = float32(score)
		candidates = append(candidates, result)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

func (s *memoryIndexer) Close() error {
	return nil
}

func NewIndexer(opts ...indexer.Option) *memoryIndexer {
	options := indexer.NewOptions(opts...)

	s := &memoryIndexer{
		options: options,
		entries: map[string]entry{},
		mtx:     sync.RWMutex{},
	}

	return s
}
