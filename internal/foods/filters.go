package foods

import (
	"cmp"
	"net/url"
	"slices"
	"strings"

	"github.com/JaimeStill/menu-lab/pkg/pagination"
)

// Filters scopes a listing to one section.
type Filters struct {
	RestaurantID string
	SectionID    string
}

func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		RestaurantID: values.Get("restaurantId"),
		SectionID:    values.Get("sectionId"),
	}
}

// search keeps items whose name contains the term, ignoring case.
func search(items []Food, term *string) []Food {
	if term == nil || *term == "" {
		return items
	}
	needle := strings.ToLower(*term)
	return slices.DeleteFunc(items, func(f Food) bool {
		return !strings.Contains(strings.ToLower(f.Name), needle)
	})
}

// order sorts items by the requested fields. Unknown fields are ignored;
// ties fall back to the item id.
func order(items []Food, fields []pagination.SortField) {
	slices.SortStableFunc(items, func(a, b Food) int {
		for _, f := range fields {
			var c int
			switch f.Field {
			case "name":
				c = cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			case "price":
				c = cmp.Compare(a.Price, b.Price)
			case "id":
				c = cmp.Compare(a.ID, b.ID)
			}
			if f.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
