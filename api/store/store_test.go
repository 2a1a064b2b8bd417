/* store_test.go
 * Contains unit tests for store.go, store_interface.go and models.go
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"scouting-bot/api/match"
)

// region Getter tests

func TestStore_GetEvent(t *testing.T) {
	s := &Store{Event: "test_event"}
	assert.Equal(t, "test_event", s.GetEvent())
}

func TestStore_GetDatabase(t *testing.T) {
	// Test that the getter works - actual database would be set by NewStore
	s := &Store{}
	assert.NotPanics(t, func() { _ = s.GetDatabase() })
}

func TestStore_GetClient(t *testing.T) {
	s := &Store{Client: nil}
	assert.NotPanics(t, func() { _ = s.GetClient() })
}

func TestNewStore_EmptyEvent(t *testing.T) {
	_, err := NewStore(context.Background(), "test_db", "mongodb://localhost:27017", "")
	assert.EqualError(t, err, "event cannot be empty")
}

// endregion

// region ToEntry tests

func TestToEntry(t *testing.T) {
	entry := CreateSampleEntry("F1", 8644)
	raw, err := bson.Marshal(newEntryDocument("test_event", entry))
	require.NoError(t, err)

	restored, err := ToEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, entry.Record(), restored.Record())
	assert.Equal(t, 36, restored.AutoScore())
	assert.Equal(t, 82, restored.TeleOpScore())
	assert.Equal(t, 41, restored.EndgameScore())
}

func TestToEntry_Backfill(t *testing.T) {
	entry := CreateSampleEntry("Q4", 12897)
	doc := EntryDocumentD("test_event", entry)

	// Remove the fields an older document would not have
	var legacy bson.D
	for _, element := range doc {
		switch element.Key {
		case "disconnect", "season":
			continue
		case "endgame":
			var endgame bson.D
			for _, field := range element.Value.(bson.D) {
				switch field.Key {
				case "duckDeliveryAttempted":
					continue
				case "ducksDelivered":
					field.Value = int32(3)
				}
				endgame = append(endgame, field)
			}
			element.Value = endgame
		}
		legacy = append(legacy, element)
	}
	raw, err := bson.Marshal(legacy)
	require.NoError(t, err)

	restored, err := ToEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, match.NoDisconnect, restored.Disconnect())
	assert.Equal(t, match.FreightFrenzy, restored.Season())
	assert.True(t, restored.Endgame().DuckDeliveryAttempted)
	assert.Equal(t, 41+18, restored.EndgameScore())
}

func TestToEntry_Invalid(t *testing.T) {
	record := CreateSampleRecord("Q4", 12897)
	record.TeleOp.FreightScoredOnSharedHub = 500
	raw, err := bson.Marshal(EntryDocument{Key: "Q4:12897", Event: "test_event", Record: record})
	require.NoError(t, err)

	_, err = ToEntry(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, match.ErrOutOfRange)
	assert.Contains(t, err.Error(), "stored entry Q4:12897 is invalid")
}

func TestBsonPresence(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "disconnect", Value: "NONE"},
		{Key: "endgame", Value: bson.D{{Key: "ducksDelivered", Value: 1}}},
	})
	require.NoError(t, err)

	present := bsonPresence(raw)
	assert.True(t, present("disconnect"))
	assert.True(t, present("endgame", "ducksDelivered"))
	assert.False(t, present("endgame", "duckDeliveryAttempted"))
	assert.False(t, present("season"))
}

// endregion

// Integration test for NewStore
func TestNewStore_Integration(t *testing.T) {
	mongoURI := os.Getenv("MONGO_TEST_URI")
	if mongoURI == "" {
		t.Skip("MONGO_TEST_URI not set, skipping integration test")
	}

	store, cleanup, err := CreateTestStore(mongoURI)
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	entry := CreateSampleEntry("Q1", 8644)
	require.NoError(t, store.StoreEntry(ctx, entry))
	require.NoError(t, store.StoreEntry(ctx, entry))

	entries, err := store.GetAllEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.Record(), entries[0].Record())

	require.NoError(t, store.RemoveEntry(ctx, entry.Key()))
	_, err = store.GetEntry(ctx, entry.Key())
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
