package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/JaimeStill/menu-lab/internal/config"
	"github.com/JaimeStill/menu-lab/internal/infrastructure"
	"github.com/joho/godotenv"
)

func main() {
	var (
		configFile = flag.String("config", config.BaseConfigFile, "Base configuration file")
		restaurant = flag.String("restaurant", "demo", "Restaurant id to seed")
		all        = flag.Bool("all", false, "Run all seeders")
		menu       = flag.Bool("menu", false, "Seed menu sections and food items")
		file       = flag.String("file", "", "External seed file (overrides embedded)")
		list       = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*menu {
		fmt.Println("usage: seed [-config <path>] [-restaurant <id>] [-all|-menu] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("finalize config: %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		log.Fatalf("init infrastructure: %v", err)
	}
	if err := infra.Start(); err != nil {
		log.Fatalf("start infrastructure: %v", err)
	}
	defer func() {
		if err := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	deps := newDeps(cfg, infra, *restaurant)
	ctx := context.Background()

	names := []string{"menu"}
	if *all {
		names = names[:0]
		for _, s := range listSeeders() {
			names = append(names, s.Name())
		}
	}

	if *file != "" {
		if seeder, ok := getSeeder("menu"); ok {
			seeder.(*MenuSeeder).SetFile(*file)
		}
	}

	for _, name := range names {
		if err := runSeeder(ctx, deps, name); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Printf("%s seeded for restaurant %s\n", name, *restaurant)
	}
}
