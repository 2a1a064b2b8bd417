/* models.go
 * This file contain the structs and helper functions that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scouting-bot/api/match"
)

// ErrEntryNotFound is returned when no entry is stored under a key for the event
var ErrEntryNotFound = errors.New("entry not found")

// EntryDocument is how a match entry is stored in the db. Scores are not stored, they are computed when the entry is
// loaded
type EntryDocument struct {
	Id     primitive.ObjectID `bson:"_id,omitempty"`
	Key    string             `bson:"key"`
	Event  string             `bson:"event"`
	Record match.Record       `bson:",inline"`
}

// FavoritesDocument holds the favorite teams for an event
type FavoritesDocument struct {
	Event string `bson:"event"`
	Name  string `bson:"name"`
	Teams []int  `bson:"teams"`
}

const favoritesName = "favorites"

func newEntryDocument(event string, entry *match.Entry) EntryDocument {
	return EntryDocument{
		Key:    entry.Key(),
		Event:  event,
		Record: entry.Record(),
	}
}

// bsonPresence returns a presence probe over a raw document, used to backfill fields older documents do not have
func bsonPresence(raw bson.Raw) func(path ...string) bool {
	return func(path ...string) bool {
		_, err := raw.LookupErr(path...)
		return err == nil
	}
}

// ToEntry converts a raw entry document into a validated match entry. Used when getting data from the db
// Preconditions: Receives a raw document from the entries collection
// Postconditions: Returns the entry with missing fields backfilled, or an error if the document is not a valid entry
func ToEntry(raw bson.Raw) (*match.Entry, error) {
	var doc EntryDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode entry document: %w", err)
	}

	match.Backfill(&doc.Record, bsonPresence(raw))
	entry, err := match.NewEntry(doc.Record)
	if err != nil {
		return nil, fmt.Errorf("stored entry %s is invalid: %w", doc.Key, err)
	}
	return entry, nil
}
