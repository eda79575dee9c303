package ports

import "context"

// Transactor runs fn so that every repository write made with the context it
// receives commits or aborts together, when the store supports it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
