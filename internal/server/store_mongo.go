package server

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"guestwall/internal/shared"
)

const entriesCollection = "entries"

type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type entryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	CreatedAt time.Time          `bson:"createdAt"`
	UserID    string             `bson:"userId"`
}

// ConnectMongo opens the client, verifies the endpoint within the server
// selection window and ensures the createdAt index. Errors here are fatal to
// the caller; there is no retry.
func ConnectMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(5 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	coll := client.Database(dbName).Collection(entriesCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: 1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure createdAt index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Insert(ctx context.Context, e *shared.Entry) (string, error) {
	res, err := s.coll.InsertOne(ctx, entryDoc{
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
		UserID:    e.UserID,
	})
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]shared.Entry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.D{
			{Key: "text", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "userId", Value: 1},
		})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := []shared.Entry{}
	for cur.Next(ctx) {
		var d entryDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		entries = append(entries, shared.Entry{
			ID:        d.ID.Hex(),
			Text:      d.Text,
			CreatedAt: d.CreatedAt,
			UserID:    d.UserID,
		})
	}
	return entries, cur.Err()
}
