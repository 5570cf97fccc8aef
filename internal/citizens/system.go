package citizens

import (
	"context"

	"github.com/google/uuid"

	"rukun/internal/genai"
	"rukun/pkg/pagination"
)

// System defines the public contract for citizen domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Citizen], error)

	Find(ctx context.Context, id uuid.UUID) (*Citizen, error)
	Create(ctx context.Context, cmd CreateCommand) (*Citizen, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Citizen, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Extract parses free-form citizen/KTP text through the model gateway.
	// The result is returned as-is; only complete results are acceptable
	// for registration.
	Extract(ctx context.Context, text string) genai.ExtractionResult
}
