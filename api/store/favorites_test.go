/* favorites_test.go
 * Contains unit tests for favorites.go
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const optionsNamespace = "test_scouting.options"

func TestGetFavoriteTeams(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns stored favorites", func(mt *mtest.T) {
		store := NewMockStore(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, optionsNamespace, mtest.FirstBatch, bson.D{
			{Key: "event", Value: "test_event"},
			{Key: "name", Value: "favorites"},
			{Key: "teams", Value: bson.A{8644, 4410}},
		}))

		teams, err := store.GetFavoriteTeams(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int{8644, 4410}, teams)
	})

	mt.Run("returns empty slice when nothing stored", func(mt *mtest.T) {
		store := NewMockStore(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, optionsNamespace, mtest.FirstBatch))

		teams, err := store.GetFavoriteTeams(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Empty(t, teams)
	})

	mt.Run("wraps db errors", func(mt *mtest.T) {
		store := NewMockStore(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "database error"}))

		_, err := store.GetFavoriteTeams(context.Background())
		assert.ErrorContains(t, err, "error fetching favorites from db")
	})
}

func TestAddFavoriteTeam(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts the favorites document", func(mt *mtest.T) {
		store := NewMockStore(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		assert.NoError(t, store.AddFavoriteTeam(context.Background(), 8644))
	})

	mt.Run("wraps db errors", func(mt *mtest.T) {
		store := NewMockStore(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "database error"}))

		err := store.AddFavoriteTeam(context.Background(), 8644)
		assert.ErrorContains(t, err, "failed to add favorite team 8644")
	})
}

func TestRemoveFavoriteTeam(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pulls the team", func(mt *mtest.T) {
		store := NewMockStore(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		assert.NoError(t, store.RemoveFavoriteTeam(context.Background(), 8644))
	})

	mt.Run("wraps db errors", func(mt *mtest.T) {
		store := NewMockStore(mt.Client, mt.DB, mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "database error"}))

		err := store.RemoveFavoriteTeam(context.Background(), 8644)
		assert.ErrorContains(t, err, "failed to remove favorite team 8644")
	})
}
