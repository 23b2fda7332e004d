package repositories

import "context"

// UnitOfWork runs a function atomically. The connection request
// check-then-write sequence depends on it.
type UnitOfWork interface {
	// Do executes fn inside a single transaction; fn's error rolls it back.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
