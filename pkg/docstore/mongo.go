package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoRecord is the stored shape of a document. The full path is the
// primary key so writes and deletes address a single record.
type mongoRecord struct {
	Path      string    `bson:"_id"`
	Parent    string    `bson:"parent"`
	ID        string    `bson:"id"`
	Data      bson.M    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type mongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	cfg    *MongoConfig
	logger *slog.Logger
}

// NewMongo creates a MongoDB client. The server is first contacted in Start.
func NewMongo(cfg *MongoConfig, logger *slog.Logger) (Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnTimeoutDuration())

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &mongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		cfg:    cfg,
		logger: logger.With("system", "docstore", "driver", DriverMongo),
	}, nil
}

func (m *mongoStore) Start(lc *lifecycle.Coordinator) error {
	m.logger.Info("starting docstore", "database", m.cfg.Database, "collection", m.cfg.Collection)

	ctx, cancel := context.WithTimeout(lc.Context(), m.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}

	index := mongo.IndexModel{
		Keys: bson.D{{Key: "parent", Value: 1}, {Key: "id", Value: 1}},
	}
	if _, err := m.coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("create parent index: %w", err)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := m.Close(); err != nil {
			m.logger.Error("docstore close failed", "error", err)
			return
		}
		m.logger.Info("docstore closed")
	})

	return nil
}

func (m *mongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.ConnTimeoutDuration())
	defer cancel()
	return m.client.Disconnect(ctx)
}

func (m *mongoStore) Get(ctx context.Context, path string) (*Document, error) {
	if err := validateDoc(path); err != nil {
		return nil, err
	}

	var rec mongoRecord
	if err := m.coll.FindOne(ctx, bson.M{"_id": path}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", path, err)
	}

	return rec.document()
}

func (m *mongoStore) Set(ctx context.Context, path string, data map[string]any) error {
	if err := validateDoc(path); err != nil {
		return err
	}

	parent, id := Split(path)
	rec := mongoRecord{
		Path:      path,
		Parent:    parent,
		ID:        id,
		Data:      bson.M(data),
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := m.coll.ReplaceOne(ctx, bson.M{"_id": path}, rec, opts); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

func (m *mongoStore) List(ctx context.Context, collection string) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := m.coll.Find(ctx, bson.M{"parent": collection}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	var recs []mongoRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(recs))
	for _, rec := range recs {
		doc, err := rec.document()
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (m *mongoStore) Delete(ctx context.Context, path string) error {
	if err := validateDoc(path); err != nil {
		return err
	}

	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": path}); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// document converts the record through JSON so callers see the same value
// types (float64, []any, map[string]any) from every backend.
func (r mongoRecord) document() (*Document, error) {
	raw, err := json.Marshal(r.Data)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", r.Path, err)
	}
	return decodeDocument(r.Path, raw)
}
