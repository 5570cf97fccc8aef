package letters

import (
	"context"

	"github.com/google/uuid"

	"rukun/pkg/pagination"
	"rukun/web/print"
)

// System defines the public contract for letter domain operations.
type System interface {
	Handler(renderer *print.Renderer) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Letter], error)

	Find(ctx context.Context, id uuid.UUID) (*Letter, error)

	// Draft generates a letter body through the model gateway and stores
	// the letter. A failed generation stores the letter without content;
	// it never fails the draft itself.
	Draft(ctx context.Context, cmd DraftCommand) (*Letter, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// PrintView assembles the display data for the printable letter page.
	PrintView(ctx context.Context, id uuid.UUID) (*print.LetterView, error)
}
