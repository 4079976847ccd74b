package main

import (
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"

	"github.com/louxiu/kumiko/vision"
)

// backendFactory vends vision.Backend instances for the pool. Backends are
// cheap to construct (no owned OS resources today) but each one may carry
// scratch buffers for the Sobel/threshold passes in the future, so they are
// pooled rather than built fresh per image — mirroring the teacher's use of
// go-commons-pool to bound its pdfium instance count.
type backendFactory struct{}

func (backendFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(vision.NewDefaultBackend()), nil
}

func (backendFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (backendFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	return true
}

func (backendFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (backendFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

// newBackendPool builds a bounded object pool of vision.Backend instances,
// sized to size concurrent borrowers (spec.md §5.1 / SPEC_FULL.md §5.1).
func newBackendPool(ctx context.Context, size int) *pool.ObjectPool {
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = size
	config.MaxIdle = size
	return pool.NewObjectPool(ctx, backendFactory{}, config)
}

// borrowBackend checks a backend out of p, running fn with it, and always
// returns it to the pool afterward.
func borrowBackend(ctx context.Context, p *pool.ObjectPool, fn func(vision.Backend) error) error {
	obj, err := p.BorrowObject(ctx)
	if err != nil {
		return err
	}
	backend := obj.(vision.Backend)

	runErr := fn(backend)

	if returnErr := p.ReturnObject(ctx, backend); returnErr != nil && runErr == nil {
		return returnErr
	}
	return runErr
}
