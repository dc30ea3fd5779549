package mongodb

import (
	"context"
	"errors"
	"fmt"

	"finaura/api/logger"
	"finaura/api/models"
	"finaura/api/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const (
	DefaultDatabase   = "finaura"
	DefaultCollection = "snapshots"
)

// SnapshotStore reads profile snapshots, one document per profile, keyed by profile_id.
type SnapshotStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	profileID  string
}

// Connect opens a client against uri. The connection is established lazily by the driver.
func Connect(uri, database, collection, profileID string) (*SnapshotStore, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri not set")
	}
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}

	client, err := mongo.Connect(clientOptions(uri))
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB",
			zap.String("database", database),
			zap.Error(err))
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	logger.Get().Info("connected to MongoDB",
		zap.String("database", database),
		zap.String("collection", collection))
	return &SnapshotStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
		profileID:  profileID,
	}, nil
}

// clientOptions decodes nested documents as bson.M so opaque gig and ledger records
// keep their object shape when served as JSON.
func clientOptions(uri string) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	return options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
}

var _ store.Provider = (*SnapshotStore)(nil)

func (s *SnapshotStore) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	var record store.SnapshotRecord
	err := s.collection.FindOne(ctx, bson.M{"profile_id": s.profileID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: no snapshot for profile %q", models.ErrMissingProfileData, s.profileID)
		}
		logger.Get().Error("failed to fetch snapshot",
			zap.String("profile_id", s.profileID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: fetching snapshot: %v", models.ErrMissingProfileData, err)
	}
	return record.ToSnapshot()
}

func (s *SnapshotStore) Close(ctx context.Context) {
	if err := s.client.Disconnect(ctx); err != nil {
		logger.Get().Error("failed to disconnect from MongoDB", zap.Error(err))
		return
	}
	logger.Get().Info("disconnected from MongoDB")
}
