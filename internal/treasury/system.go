package treasury

import (
	"context"

	"github.com/google/uuid"

	"rukun/pkg/pagination"
)

// System defines the public contract for treasury domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Transaction], error)

	Find(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Create(ctx context.Context, cmd CreateCommand) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Summarize computes the ledger totals.
	Summarize(ctx context.Context) (*Summary, error)

	// Insight builds a ledger snapshot and asks the model gateway for a
	// short financial commentary. It degrades to a fixed fallback string
	// and never returns an error for a failed model call.
	Insight(ctx context.Context) (string, error)
}
