package repositories

import (
	"context"
)

// TransactionManager runs a function as one atomic unit of work.
// Repositories called with the ctx handed to fn take part in the unit;
// if fn returns an error every write made through that ctx is discarded.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
