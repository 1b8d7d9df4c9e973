package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/alipouryousefi/task-manager-back/internal/config"
)

const (
	usersCollection = "users"
	tasksCollection = "tasks"

	connectTimeout = 10 * time.Second
)

// ConnectDB opens a client against the configured MongoDB deployment and
// pings it so startup fails fast when the database is unreachable.
func ConnectDB(conf *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	database := client.Database(conf.MongoDatabase)
	if err := ensureIndexes(ctx, database); err != nil {
		return nil, err
	}

	return database, nil
}

// ensureIndexes creates the unique email index that backs duplicate
// registration detection.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
