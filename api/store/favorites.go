/* favorites.go
 * Contains the methods for interacting with the favorite teams stored in the options collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) favoritesFilter() bson.M {
	return bson.M{"event": s.Event, "name": favoritesName}
}

// GetFavoriteTeams returns the favorite teams for the event
// Postconditions: Returns the teams in the order they were added, an empty slice if there are none, or an error if it
// occurs
func (s *Store) GetFavoriteTeams(ctx context.Context) ([]int, error) {
	var doc FavoritesDocument
	err := s.Collections.Options.FindOne(ctx, s.favoritesFilter()).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("error fetching favorites from db: %w", err)
	}
	if doc.Teams == nil {
		return []int{}, nil
	}
	return doc.Teams, nil
}

// AddFavoriteTeam adds a team to the favorites. Adding a team twice has no effect
func (s *Store) AddFavoriteTeam(ctx context.Context, team int) error {
	update := bson.M{"$addToSet": bson.M{"teams": team}}
	_, err := s.Collections.Options.UpdateOne(ctx, s.favoritesFilter(), update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to add favorite team %d: %w", team, err)
	}
	return nil
}

// RemoveFavoriteTeam removes a team from the favorites. Removing a team that is not a favorite has no effect
func (s *Store) RemoveFavoriteTeam(ctx context.Context, team int) error {
	update := bson.M{"$pull": bson.M{"teams": team}}
	_, err := s.Collections.Options.UpdateOne(ctx, s.favoritesFilter(), update)
	if err != nil {
		return fmt.Errorf("failed to remove favorite team %d: %w", team, err)
	}
	return nil
}
