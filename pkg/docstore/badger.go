package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
	"github.com/dgraph-io/badger/v4"
)

// badgerStore keeps each document under its full path as the key, with the
// field map JSON-encoded as the value. Collection scans iterate the key prefix
// and skip keys belonging to nested collections.
type badgerStore struct {
	db     *badger.DB
	logger *slog.Logger
}

// NewBadger opens an embedded Badger database at cfg.Path, or in memory when cfg.InMemory is set.
func NewBadger(cfg *BadgerConfig, logger *slog.Logger) (Store, error) {
	logger = logger.With("system", "docstore", "driver", DriverBadger)

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{logger: logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &badgerStore{
		db:     db,
		logger: logger,
	}, nil
}

func (s *badgerStore) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting docstore")

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.Close(); err != nil {
			s.logger.Error("docstore close failed", "error", err)
			return
		}
		s.logger.Info("docstore closed")
	})

	return nil
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}

func (s *badgerStore) Get(ctx context.Context, path string) (*Document, error) {
	if err := validateDoc(path); err != nil {
		return nil, err
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(path))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", path, err)
	}

	return decodeDocument(path, raw)
}

func (s *badgerStore) Set(ctx context.Context, path string, data map[string]any) error {
	if err := validateDoc(path); err != nil {
		return err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(path), raw)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

func (s *badgerStore) List(ctx context.Context, collection string) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	prefix := []byte(collection + separator)
	docs := make([]Document, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			key := item.KeyCopy(nil)
			if bytes.Contains(key[len(prefix):], []byte(separator)) {
				continue
			}

			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			doc, err := decodeDocument(string(key), raw)
			if err != nil {
				return err
			}
			docs = append(docs, *doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	return docs, nil
}

func (s *badgerStore) Delete(ctx context.Context, path string) error {
	if err := validateDoc(path); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(path))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func decodeDocument(path string, raw []byte) (*Document, error) {
	data := make(map[string]any)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if data == nil {
		data = make(map[string]any)
	}

	_, id := Split(path)
	return &Document{
		ID:   id,
		Path: path,
		Data: data,
	}, nil
}

// badgerLogger routes Badger's internal logging through slog.
type badgerLogger struct {
	logger *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(trimLog(format, args))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(trimLog(format, args))
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(trimLog(format, args))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(trimLog(format, args))
}

func trimLog(format string, args []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
