package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/JaimeStill/menu-lab/internal/foods"
	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/internal/sections"
)

//go:embed menu.json
var defaultMenu []byte

func init() {
	registerSeeder(&MenuSeeder{})
}

// MenuSeedData is the JSON structure of a menu seed file.
type MenuSeedData struct {
	Sections []SectionSeed `json:"sections"`
}

type SectionSeed struct {
	Name  string         `json:"name"`
	Items []foods.Fields `json:"items"`
}

// MenuSeeder creates sections and their food items. Sections that already
// exist are left in place and skipped.
type MenuSeeder struct {
	file string
}

func (s *MenuSeeder) Name() string {
	return "menu"
}

func (s *MenuSeeder) Description() string {
	return "Seeds menu sections and their food items"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *MenuSeeder) SetFile(path string) {
	s.file = path
}

func (s *MenuSeeder) Seed(ctx context.Context, deps *Deps) error {
	data, err := s.load()
	if err != nil {
		return err
	}

	for _, section := range data.Sections {
		created, err := deps.Sections.Create(ctx, sections.CreateCommand{
			RestaurantID: deps.RestaurantID,
			Name:         section.Name,
		})
		if errors.Is(err, sections.ErrDuplicate) {
			deps.Logger.Info("section exists, skipping", "section", menu.NormalizeKey(section.Name))
			continue
		}
		if err != nil {
			return fmt.Errorf("create section %q: %w", section.Name, err)
		}

		for _, item := range section.Items {
			if item.FoodType == "" {
				item.FoodType = section.Name
			}
			_, err := deps.Foods.Create(ctx, foods.CreateCommand{
				RestaurantID: deps.RestaurantID,
				SectionID:    created.ID,
				SectionName:  section.Name,
				Fields:       item,
			})
			if err != nil {
				return fmt.Errorf("create item %q in %s: %w", item.Name, created.ID, err)
			}
		}

		deps.Logger.Info("section seeded", "section", created.ID, "items", len(section.Items))
	}

	return nil
}

func (s *MenuSeeder) load() (*MenuSeedData, error) {
	raw := defaultMenu
	if s.file != "" {
		b, err := os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}

	var data MenuSeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
