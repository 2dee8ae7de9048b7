package foods

import (
	"fmt"

	"github.com/JaimeStill/menu-lab/pkg/decode"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
)

func toDocument(f Fields) (map[string]any, error) {
	data, err := decode.ToMap(f)
	if err != nil {
		return nil, fmt.Errorf("encode food item: %w", err)
	}
	return data, nil
}

func fromDocument(doc *docstore.Document) (Food, error) {
	fields, err := decode.FromMap[Fields](doc.Data)
	if err != nil {
		return Food{}, fmt.Errorf("decode food item %s: %w", doc.ID, err)
	}
	if fields.Images == nil {
		fields.Images = []string{}
	}
	return Food{ID: doc.ID, Fields: fields}, nil
}

// removedImages returns the URLs in before that are absent from after.
func removedImages(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, u := range after {
		keep[u] = struct{}{}
	}

	var removed []string
	for _, u := range before {
		if _, ok := keep[u]; !ok {
			removed = append(removed, u)
		}
	}
	return removed
}
