package database

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names used by the web client since the first release.
const (
	UsersCollection     = "users"
	CoursesCollection   = "course"
	BookingsCollection  = "booked"
	ReviewsCollection   = "review"
	NotesCollection     = "notes"
	MaterialsCollection = "materials"
)

const connectTimeout = 10 * time.Second

// ConnectMongo dials the cluster, pings the primary and returns the client
// together with the application database.
func ConnectMongo(ctx context.Context, uri string, dbName string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	glog.Infof("connected to MongoDB database %q", dbName)
	return client, client.Database(dbName), nil
}

// Ping reports whether the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
