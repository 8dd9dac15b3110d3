package storer

import "context"

// Storer is the structured (authoritative) backing store for quote records.
// Init is idempotent and safe to call on every process start. Insert returns
// a newly generated, strictly increasing unique record id.
type Storer interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, rec QuoteRecord) (int64, error)
	Get(ctx context.Context, id int64) (*QuoteRecord, error)
	List(ctx context.Context) ([]QuoteRecord, error)
	Vendors(ctx context.Context) ([]VendorPerformance, error)
	Close() error
}
