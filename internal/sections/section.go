// Package sections manages restaurant menu sections and runs the two
// multi-document section workflows: rename (migrate every item to a new
// section key) and delete (remove every item, its images, and the section).
//
// Workflows run their store calls sequentially under the section locks and
// record each step in a Journal. Every step is idempotent, so a failed
// workflow can be re-submitted and will complete the remaining work.
package sections

import (
	"fmt"

	"github.com/JaimeStill/menu-lab/internal/foods"
	"github.com/JaimeStill/menu-lab/internal/images"
	"github.com/JaimeStill/menu-lab/internal/menu"
)

// Section is a section document together with its items.
type Section struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Items []foods.Food `json:"items"`
}

type CreateCommand struct {
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
}

func (c *CreateCommand) Validate() error {
	if c.RestaurantID == "" {
		return menu.Missing("restaurantId")
	}
	if c.Name == "" {
		return menu.Missing("name")
	}
	return nil
}

// RenameCommand migrates a section to a new key and display name.
type RenameCommand struct {
	RestaurantID   string `json:"restaurantId"`
	OldSectionID   string `json:"oldSectionId"`
	NewSectionID   string `json:"newSectionId"`
	NewSectionName string `json:"newSectionName"`
}

func (c *RenameCommand) Validate() error {
	if c.RestaurantID == "" {
		return menu.Missing("restaurantId")
	}
	if c.OldSectionID == "" {
		return menu.Missing("oldSectionId")
	}
	if c.NewSectionID == "" {
		return menu.Missing("newSectionId")
	}
	if c.NewSectionName == "" {
		return menu.Missing("newSectionName")
	}
	if key := menu.NormalizeKey(c.NewSectionName); c.NewSectionID != key {
		return &menu.ValidationError{
			Field:   "newSectionId",
			Message: fmt.Sprintf("newSectionId %q does not match newSectionName (want %q)", c.NewSectionID, key),
		}
	}
	return nil
}

// SameKey reports whether the rename only changes the display name.
func (c *RenameCommand) SameKey() bool {
	return c.OldSectionID == c.NewSectionID
}

type DeleteCommand struct {
	RestaurantID string `json:"restaurantId"`
	SectionID    string `json:"sectionId"`
}

func (c *DeleteCommand) Validate() error {
	if c.RestaurantID == "" {
		return menu.Missing("restaurantId")
	}
	if c.SectionID == "" {
		return menu.Missing("sectionId")
	}
	return nil
}

type RenameResult struct {
	OperationID string `json:"operationId"`
	Moved       int    `json:"moved"`
	Replayed    bool   `json:"replayed,omitempty"`
}

type DeleteResult struct {
	OperationID string        `json:"operationId"`
	Deleted     int           `json:"deleted"`
	Images      images.Report `json:"images"`
	Replayed    bool          `json:"replayed,omitempty"`
}
