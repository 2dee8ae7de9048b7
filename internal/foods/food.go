// Package foods manages food items stored under a restaurant section.
package foods

import (
	"github.com/JaimeStill/menu-lab/internal/menu"
)

// Food is a menu item. The free-form nutrition and price fields accept
// strings or numbers from clients and are stored as text.
type Food struct {
	ID string `json:"id"`
	Fields
}

// Fields holds every stored attribute of a food item.
type Fields struct {
	Name        string    `json:"name"`
	Ingredients menu.Text `json:"ingredients"`
	Calories    menu.Text `json:"calories"`
	Protein     menu.Text `json:"protein"`
	Carbs       menu.Text `json:"carbs"`
	Fat         menu.Text `json:"fat"`
	Vitamins    menu.Text `json:"vitamins"`
	Allergens   menu.Text `json:"allergens"`
	FoodType    string    `json:"foodType"`
	Price       menu.Text `json:"price"`
	Images      []string  `json:"images"`
}

// CreateCommand adds an item to a section. SectionName names the section
// document when the section does not exist yet.
type CreateCommand struct {
	RestaurantID string `json:"restaurantId"`
	SectionID    string `json:"sectionId"`
	SectionName  string `json:"sectionName,omitempty"`
	Fields
}

// UpdateCommand overwrites an item. A non-empty OriginalSectionID that
// differs from SectionID moves the item.
type UpdateCommand struct {
	ID                string `json:"id"`
	RestaurantID      string `json:"restaurantId"`
	SectionID         string `json:"sectionId"`
	OriginalSectionID string `json:"originalSectionId,omitempty"`
	SectionName       string `json:"sectionName,omitempty"`
	Fields
}

type DeleteCommand struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	SectionID    string `json:"sectionId"`
}

// normalize fills the defaults applied on every write.
func (f Fields) normalize(sectionID string) Fields {
	if f.FoodType == "" {
		f.FoodType = sectionID
	}
	if f.Images == nil {
		f.Images = []string{}
	}
	return f
}

func (c *CreateCommand) Validate() error {
	if c.RestaurantID == "" {
		return menu.Missing("restaurantId")
	}
	if c.SectionID == "" {
		return menu.Missing("sectionId")
	}
	if c.Name == "" {
		return &menu.ValidationError{Field: "name", Label: "food name"}
	}
	return nil
}

func (c *UpdateCommand) Validate() error {
	if c.ID == "" {
		return menu.Missing("id")
	}
	if c.RestaurantID == "" {
		return menu.Missing("restaurantId")
	}
	if c.SectionID == "" {
		return menu.Missing("sectionId")
	}
	if c.Name == "" {
		return &menu.ValidationError{Field: "name", Label: "food name"}
	}
	return nil
}

// Moves reports whether the update relocates the item to another section.
func (c *UpdateCommand) Moves() bool {
	return c.OriginalSectionID != "" && c.OriginalSectionID != c.SectionID
}

func (c *DeleteCommand) Validate() error {
	if c.ID == "" {
		return menu.Missing("id")
	}
	if c.RestaurantID == "" {
		return menu.Missing("restaurantId")
	}
	if c.SectionID == "" {
		return menu.Missing("sectionId")
	}
	return nil
}
