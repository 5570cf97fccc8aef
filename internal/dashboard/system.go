package dashboard

import "context"

// System defines the public contract for dashboard operations.
type System interface {
	Handler() *Handler

	// Stats computes the aggregated neighborhood profile.
	Stats(ctx context.Context) (*Stats, error)

	// Insight feeds the current stats to the model gateway for a short
	// demographic commentary. Model failures degrade to a fixed fallback
	// string, never an error.
	Insight(ctx context.Context) (string, error)
}
