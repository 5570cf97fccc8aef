package families

import (
	"context"

	"github.com/google/uuid"

	"rukun/internal/citizens"
	"rukun/pkg/pagination"
)

// System defines the public contract for family card domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[FamilyCard], error)

	Find(ctx context.Context, id uuid.UUID) (*FamilyCard, error)
	Create(ctx context.Context, cmd CreateCommand) (*FamilyCard, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Members lists the citizens registered under a family card.
	Members(ctx context.Context, id uuid.UUID) ([]citizens.Citizen, error)
}
