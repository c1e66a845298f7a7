package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Parse extracts practice events from an uploaded schedule PDF, merging
	// same-day dry-land segments and cross-checking the extraction against a
	// secondary model.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
