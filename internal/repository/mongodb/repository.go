package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Adapter persists collection blobs to MongoDB, one document per collection key.
type Adapter struct {
	client   *mongo.Client
	dbName   string
	collName string
	logger   *zap.Logger
}

type blobDocument struct {
	Key       string    `bson:"_id"`
	Blob      []byte    `bson:"blob"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// New connects to MongoDB and verifies the connection.
func New(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Adapter{
		client:   client,
		dbName:   dbName,
		collName: "collections",
		logger:   logger,
	}, nil
}

// Read returns the blob stored under key. Any failure reads as "absent".
func (a *Adapter) Read(ctx context.Context, key string) ([]byte, bool) {
	collection := a.client.Database(a.dbName).Collection(a.collName)

	var doc blobDocument
	err := collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			a.logger.Warn("mongodb read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return doc.Blob, true
}

// Write stores the blob under key, replacing any previous value.
func (a *Adapter) Write(ctx context.Context, key string, blob []byte) error {
	collection := a.client.Database(a.dbName).Collection(a.collName)

	doc := blobDocument{Key: key, Blob: blob, UpdatedAt: time.Now().UTC()}
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb write %s: %w", key, err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (a *Adapter) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
