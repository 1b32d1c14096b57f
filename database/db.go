package database

import (
	"context"
	"errors"
	"time"

	"cardoctor/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned by repositories built over a nil database
// handle, which happens when the startup connection attempt failed.
var ErrNotConnected = errors.New("database not connected")

// Connect establishes the MongoDB connection and verifies it with a ping.
// The returned client owns the connection pool for the process lifetime.
func Connect(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}
