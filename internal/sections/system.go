package sections

import "context"

// System defines section operations.
type System interface {
	Handler() *Handler

	// List returns every section of a restaurant with its items.
	List(ctx context.Context, restaurantID string) ([]Section, error)
	Find(ctx context.Context, restaurantID, sectionID string) (*Section, error)
	Create(ctx context.Context, cmd CreateCommand) (*Section, error)

	// Rename migrates every item from the old key to the new key, rewriting
	// foodType to the new display name, then removes the old section.
	// A non-empty idempotencyKey records the outcome.
	Rename(ctx context.Context, cmd RenameCommand, idempotencyKey string) (*RenameResult, error)

	// Delete removes every item and the section document. Image cleanup is
	// best effort; failures are reported in the result.
	Delete(ctx context.Context, cmd DeleteCommand, idempotencyKey string) (*DeleteResult, error)
}
