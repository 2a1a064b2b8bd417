/* entries.go
 * Contains the methods for interacting with the match_entries collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scouting-bot/api/match"
)

func (s *Store) entryFilter(key string) bson.M {
	return bson.M{"key": key, "event": s.Event}
}

// StoreEntry stores a match entry in the db. An existing entry for the same team in the same match is replaced
// Preconditions: Receives a validated entry
// Postconditions: Stores or replaces the entry in the db, or returns an error if the operation was unsuccessful
func (s *Store) StoreEntry(ctx context.Context, entry *match.Entry) error {
	doc := newEntryDocument(s.Event, entry)

	// Attempt to find an existing document
	var existing bson.Raw
	err := s.Collections.Entries.FindOne(ctx, s.entryFilter(doc.Key)).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing entry failed: %w", err)
	}

	// The team has not been scouted in this match yet so we create a new document
	if notFound {
		if _, err := s.Collections.Entries.InsertOne(ctx, doc); err != nil {
			return fmt.Errorf("failed to insert new entry: %w", err)
		}
		return nil
	}

	// Else replace the whole entry, fields missing from the new entry must not survive from the old one
	log.WithField("key", doc.Key).Info("replacing existing entry")
	if _, err := s.Collections.Entries.ReplaceOne(ctx, s.entryFilter(doc.Key), doc); err != nil {
		return fmt.Errorf("failed to replace existing entry: %w", err)
	}
	return nil
}

// StoreEntries stores several entries at once, used when importing. Entries are written in order, so a later entry
// with the same key wins
// Preconditions: Receives validated entries
// Postconditions: Stores or replaces every entry, or returns an error if the bulk write failed
func (s *Store) StoreEntries(ctx context.Context, entries []*match.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(entries))
	for _, entry := range entries {
		doc := newEntryDocument(s.Event, entry)
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(s.entryFilter(doc.Key)).
			SetReplacement(doc).
			SetUpsert(true))
	}

	result, err := s.Collections.Entries.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("failed to store entries: %w", err)
	}
	log.WithFields(log.Fields{
		"event":    s.Event,
		"inserted": result.UpsertedCount,
		"replaced": result.ModifiedCount,
	}).Info("stored entries")
	return nil
}

// GetEntry does DB lookup and gets the entry stored under a key
// Preconditions: Receives a key in the form "{matchCode}:{teamNumber}"
// Postconditions: Returns the entry, ErrEntryNotFound if there is none, or an error if it occurs
func (s *Store) GetEntry(ctx context.Context, key string) (*match.Entry, error) {
	raw, err := s.Collections.Entries.FindOne(ctx, s.entryFilter(key)).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", key, ErrEntryNotFound)
		}
		return nil, fmt.Errorf("error fetching entry from db: %w", err)
	}
	return ToEntry(raw)
}

// GetAllEntries does DB lookup and gets every entry for the event. Statistics are always computed over this full set
// Postconditions: Returns a slice of entries in the order they were stored, or an error if it occurs
func (s *Store) GetAllEntries(ctx context.Context) ([]*match.Entry, error) {
	return s.findEntries(ctx, bson.D{{Key: "event", Value: s.Event}})
}

// GetTeamEntries does DB lookup and gets every entry for one team at the event
func (s *Store) GetTeamEntries(ctx context.Context, team int) ([]*match.Entry, error) {
	return s.findEntries(ctx, bson.D{{Key: "event", Value: s.Event}, {Key: "teamNumber", Value: team}})
}

func (s *Store) findEntries(ctx context.Context, filter bson.D) ([]*match.Entry, error) {
	cursor, err := s.Collections.Entries.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching entries from db: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*match.Entry
	for cursor.Next(ctx) {
		entry, err := ToEntry(cursor.Current)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error reading entries cursor: %w", err)
	}
	return entries, nil
}

// RemoveEntry deletes the entry stored under a key
// Postconditions: Returns nil if the entry was deleted, ErrEntryNotFound if there was no entry, or an error if it occurs
func (s *Store) RemoveEntry(ctx context.Context, key string) error {
	result, err := s.Collections.Entries.DeleteOne(ctx, s.entryFilter(key))
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", key, ErrEntryNotFound)
	}
	return nil
}
