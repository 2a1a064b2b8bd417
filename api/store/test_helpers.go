/* test_helpers.go
 * Contains test helper functions for store package tests and for packages that need sample entries
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scouting-bot/api/match"
)

// NewMockStore creates a Store whose collections are backed by the given collection, such as an mtest mock
// collection. Client and Database may be nil
func NewMockStore(client *mongo.Client, db *mongo.Database, coll *mongo.Collection) *Store {
	return &Store{
		Client:   client,
		Database: db,
		Event:    "test_event",
		Collections: Collections{
			Entries: coll,
			Options: coll,
		},
	}
}

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore(context.TODO(), "test_scouting", mongoURI, "test_event")
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleRecord creates a valid record for testing. The team scores 36 in autonomous
func CreateSampleRecord(matchCode string, team int) match.Record {
	return match.Record{
		MatchCode:  matchCode,
		TeamNumber: float64(team),
		Alliance:   match.AllianceRed,
		Auto: match.AutonomousPerformance{
			UsedTse:               match.Scored,
			DeliveredPreLoaded:    match.Scored,
			DeliveredCarouselDuck: match.DidNotTry,
			FreightScoredPerLevel: [3]int{0, 2, 4},
			Parked:                match.CompletelyInWarehouse,
			WarningsPenalties:     match.WarningsPenalties{0, 3, 0},
		},
		TeleOp: match.TeleOpPerformance{
			FreightScoredOnSharedHub: 11,
			FreightScoredPerLevel:    [3]int{0, 0, 1},
		},
		Endgame: match.EndgamePerformance{
			AllianceHubTipped: match.Tipped,
			SharedHubTipped:   match.Tipped,
			Parked:            match.EndgameCompletelyIn,
			TseScored:         match.Scored,
		},
		Disconnect: match.NoDisconnect,
		Season:     match.FreightFrenzy,
	}
}

// CreateSampleEntry creates a valid entry for testing. Panics if the sample record is invalid
func CreateSampleEntry(matchCode string, team int) *match.Entry {
	entry, err := match.NewEntry(CreateSampleRecord(matchCode, team))
	if err != nil {
		panic(err)
	}
	return entry
}

// EntryDocumentD converts an entry to the bson.D stored in the db, for use in mock cursor responses
func EntryDocumentD(event string, entry *match.Entry) bson.D {
	data, err := bson.Marshal(newEntryDocument(event, entry))
	if err != nil {
		panic(err)
	}
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		panic(err)
	}
	return doc
}
