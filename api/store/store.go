/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into two files:
 * entries and favorites. Each of these files contain methods for interacting with that part of the database
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections holds the collections used by the store. Every document carries the event it belongs to, so several
// events can share a database
type Collections struct {
	Entries *mongo.Collection
	Options *mongo.Collection
}

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Event       string
	Collections Collections
}

// NewStore initialises the db connection for an event
// Preconditions: Receives a context for the connection and strings containing dbName, mongoURI and event
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(ctx context.Context, dbName string, mongoURI string, event string) (*Store, error) {
	if event == "" {
		return nil, fmt.Errorf("event cannot be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Event:    event,
		Collections: Collections{
			Entries: db.Collection("match_entries"),
			Options: db.Collection("options"),
		},
	}, nil
}
