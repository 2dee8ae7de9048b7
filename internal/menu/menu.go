// Package menu holds the document layout and error taxonomy shared by the
// sections, foods, and images domains.
//
// Documents are stored at hierarchical paths:
//
//	restaurants/{restaurantId}/sections/{sectionId}                    {name}
//	restaurants/{restaurantId}/sections/{sectionId}/foodItems/{itemId} food item
//	restaurants/{restaurantId}/operations/{idempotencyKey}             operation record
//
// Image blobs live in the object store at restaurants/{restaurantId}/foodItems/{file}.
package menu

import (
	"regexp"
	"strings"

	"github.com/JaimeStill/menu-lab/pkg/docstore"
)

const (
	restaurantsCollection = "restaurants"
	sectionsCollection    = "sections"
	foodItemsCollection   = "foodItems"
	operationsCollection  = "operations"

	// ImageWarnThreshold is the image count past which an item is logged as oversized.
	ImageWarnThreshold = 20
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeKey derives a section key from its display name:
// whitespace runs become "_" and the result is lowercased.
func NormalizeKey(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(name, "_"))
}

func RestaurantPath(restaurantID string) string {
	return docstore.Doc(restaurantsCollection, restaurantID)
}

func SectionsCollection(restaurantID string) string {
	return docstore.Join(RestaurantPath(restaurantID), sectionsCollection)
}

func SectionPath(restaurantID, sectionID string) string {
	return docstore.Doc(SectionsCollection(restaurantID), sectionID)
}

func FoodsCollection(restaurantID, sectionID string) string {
	return docstore.Join(SectionPath(restaurantID, sectionID), foodItemsCollection)
}

func FoodPath(restaurantID, sectionID, itemID string) string {
	return docstore.Doc(FoodsCollection(restaurantID, sectionID), itemID)
}

func OperationPath(restaurantID, key string) string {
	return docstore.Doc(docstore.Join(RestaurantPath(restaurantID), operationsCollection), key)
}

// ImagePrefix is the object store prefix for a restaurant's item images.
func ImagePrefix(restaurantID string) string {
	return restaurantsCollection + "/" + restaurantID + "/" + foodItemsCollection
}

// SectionLock names the lock guarding a section and its items.
func SectionLock(restaurantID, sectionID string) string {
	return restaurantID + "/" + sectionID
}

// OperationLock names the lock guarding an idempotency record.
func OperationLock(restaurantID, key string) string {
	return restaurantID + "/" + operationsCollection + "/" + key
}
