// Package main provides the seed command for populating a restaurant menu
// with initial or demo data. Seeders run through the same domain systems the
// API uses, so seeded documents follow every write rule.
package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/JaimeStill/menu-lab/internal/config"
	"github.com/JaimeStill/menu-lab/internal/foods"
	"github.com/JaimeStill/menu-lab/internal/images"
	"github.com/JaimeStill/menu-lab/internal/infrastructure"
	"github.com/JaimeStill/menu-lab/internal/sections"
)

// Deps are the domain systems a seeder writes through.
type Deps struct {
	RestaurantID string
	Sections     sections.System
	Foods        foods.System
	Logger       *slog.Logger
}

func newDeps(cfg *config.Config, infra *infrastructure.Infrastructure, restaurantID string) *Deps {
	imgs := images.New(infra.Storage, infra.Logger, cfg.PublicURL(), cfg.Storage.MaxUploadSizeBytes())
	return &Deps{
		RestaurantID: restaurantID,
		Sections:     sections.New(infra.Documents, imgs, infra.Locks, infra.Logger),
		Foods:        foods.New(infra.Documents, imgs, infra.Locks, infra.Logger, cfg.API.Pagination),
		Logger:       infra.Logger.With("command", "seed"),
	}
}

// Seeder defines the interface for menu seeders.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	Description() string

	// Seed writes the seeder's data. Seeding twice must not duplicate sections.
	Seed(ctx context.Context, deps *Deps) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the global registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders ordered by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	slices.SortFunc(result, func(a, b Seeder) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return result
}

func runSeeder(ctx context.Context, deps *Deps, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}

	if err := seeder.Seed(ctx, deps); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}
