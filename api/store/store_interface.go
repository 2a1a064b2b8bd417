/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"scouting-bot/api/match"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	StoreEntry(ctx context.Context, entry *match.Entry) error
	StoreEntries(ctx context.Context, entries []*match.Entry) error
	GetEntry(ctx context.Context, key string) (*match.Entry, error)
	GetAllEntries(ctx context.Context) ([]*match.Entry, error)
	GetTeamEntries(ctx context.Context, team int) ([]*match.Entry, error)
	RemoveEntry(ctx context.Context, key string) error

	GetFavoriteTeams(ctx context.Context) ([]int, error)
	AddFavoriteTeam(ctx context.Context, team int) error
	RemoveFavoriteTeam(ctx context.Context, team int) error

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetEvent() string
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetEvent returns the event entries are stored under
func (s *Store) GetEvent() string {
	return s.Event
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
