package repository

import "context"

// TransactionManager runs several repository calls atomically.
// Repositories called with the ctx handed to fn join the transaction; if fn
// returns an error every write made through that ctx is rolled back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error
}
