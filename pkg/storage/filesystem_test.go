package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
	"github.com/JaimeStill/menu-lab/pkg/logging"
	"github.com/JaimeStill/menu-lab/pkg/storage"
)

func newFilesystem(t *testing.T) (storage.System, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "blobs")

	store, err := storage.NewFilesystem(dir, logging.Discard())
	if err != nil {
		t.Fatalf("NewFilesystem() error = %v", err)
	}
	if err := store.Start(lifecycle.New()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return store, dir
}

func TestNewFilesystem_EmptyPath(t *testing.T) {
	if _, err := storage.NewFilesystem("", logging.Discard()); err == nil {
		t.Error("NewFilesystem(\"\") should fail")
	}
}

func TestFilesystem_StoreRetrieve(t *testing.T) {
	store, dir := newFilesystem(t)
	ctx := context.Background()
	key := "restaurants/r1/foodItems/1700000000000_salad.png"

	if err := store.Store(ctx, key, []byte("png")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	data, err := store.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if string(data) != "png" {
		t.Errorf("data = %q, want %q", data, "png")
	}

	if _, err := os.Stat(filepath.Join(dir, key+".tmp")); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp file should not remain after Store")
	}

	ok, err := store.Validate(ctx, key)
	if err != nil || !ok {
		t.Errorf("Validate() = %v, %v; want true, nil", ok, err)
	}
}

func TestFilesystem_Retrieve_NotFound(t *testing.T) {
	store, _ := newFilesystem(t)

	_, err := store.Retrieve(context.Background(), "restaurants/r1/foodItems/missing.png")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestFilesystem_Delete(t *testing.T) {
	store, dir := newFilesystem(t)
	ctx := context.Background()
	key := "restaurants/r1/foodItems/1_cake.jpg"

	if err := store.Store(ctx, key, []byte("jpg")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	ok, err := store.Validate(ctx, key)
	if err != nil || ok {
		t.Errorf("Validate() = %v, %v; want false, nil", ok, err)
	}

	if _, err := os.Stat(filepath.Join(dir, "restaurants")); !errors.Is(err, os.ErrNotExist) {
		t.Error("empty parent directories should be pruned")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("base path should be preserved")
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Errorf("Delete() of missing key error = %v, want nil", err)
	}
}

func TestFilesystem_InvalidKey(t *testing.T) {
	store, _ := newFilesystem(t)
	ctx := context.Background()

	for _, key := range []string{"", "../escape.png", "/etc/passwd", "a/../../b"} {
		t.Run(key, func(t *testing.T) {
			if err := store.Store(ctx, key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store() err = %v, want %v", err, storage.ErrInvalidKey)
			}
			if err := store.Delete(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Delete() err = %v, want %v", err, storage.ErrInvalidKey)
			}
		})
	}
}
