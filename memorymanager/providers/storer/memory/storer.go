package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/w-h-a/procurement/memorymanager/providers/storer"
)

type memoryStorer struct {
	options storer.Options
	counter atomic.Int64
	records map[int64]storer.QuoteRecord
	vendors map[string]storer.VendorPerformance
	mtx     sync.RWMutex
}

func (s *memoryStorer) Init(ctx context.Context) error {
	return nil
}

func (s *memoryStorer) Insert(ctx context.Context, rec storer.QuoteRecord) (int64, error) {
	id := s.counter.Add(1)

	s.mtx.Lock()
	defer s.mtx.Unlock()

	rec.Id = id
	s.records[id] = rec

	return id, nil
}

func (s *memoryStorer) Get(ctx context.Context, id int64) (*storer.QuoteRecord, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	rec, exists := s.records[id]
	if !exists {
		return nil, nil
	}

	return &rec, nil
}

func (s *memoryStorer) List(ctx context.Context) ([]storer.QuoteRecord, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	records := make([]storer.QuoteRecord, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Id > records[j].Id
	})

	return records, nil
}

func (s *memoryStorer) Vendors(ctx context.Context) ([]storer.VendorPerformance, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	vendors := make([]storer.VendorPerformance, 0, len(s.vendors))
	for _, v := range s.vendors {
		vendors = append(vendors, v)
	}

	sort.Slice(vendors, func(i, j int) bool {
		return vendors[i].VendorName < vendors[j].VendorName
	})

	return vendors, nil
}

func (s *memoryStorer) Close() error {
	return nil
}

// SeedVendor is a test hook for populating the vendor_performance contract.
func (s *memoryStorer) SeedVendor(v storer.VendorPerformance) error {
	if len(v.VendorName) == 0 {
		return fmt.Errorf("vendor name is required")
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.vendors[v.VendorName] = v

	return nil
}

func NewStorer(opts ...storer.Option) *memoryStorer {
	options := storer.NewOptions(opts...)

	s := &memoryStorer{
		options: options,
		records: map[int64]storer.QuoteRecord{},
		vendors: map[string]storer.VendorPerformance{},
		mtx:     sync.RWMutex{},
	}

	return s
}
