package testutil

import (
	"context"
	"sync"

	"fleetadmin/internal/repository"
)

// NoopTxManager runs fn directly. In-memory stores have no transactions to join.
type NoopTxManager struct{}

var _ repository.TransactionManager = NoopTxManager{}

func (NoopTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// SerialTxManager runs one unit of work at a time, standing in for row and advisory locks.
type SerialTxManager struct {
	mu sync.Mutex
}

var _ repository.TransactionManager = (*SerialTxManager)(nil)

func (m *SerialTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
