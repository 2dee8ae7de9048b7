package foods

import (
	"context"

	"github.com/JaimeStill/menu-lab/internal/images"
	"github.com/JaimeStill/menu-lab/pkg/pagination"
)

// System defines food item operations. Writes hold the section lock for
// every section they touch.
type System interface {
	Handler() *Handler

	List(ctx context.Context, filters Filters, page pagination.PageRequest) (*pagination.PageResult[Food], error)
	Find(ctx context.Context, restaurantID, sectionID, id string) (*Food, error)

	// Create stores a new item and returns its generated id. The section
	// document is created when missing.
	Create(ctx context.Context, cmd CreateCommand) (string, error)

	// Update overwrites an item. A move writes the new document before
	// deleting the original. Images dropped from the item are cleaned up.
	Update(ctx context.Context, cmd UpdateCommand) (images.Report, error)

	// Delete removes an item and its images. Deleting a missing item succeeds.
	Delete(ctx context.Context, cmd DeleteCommand) (images.Report, error)
}
