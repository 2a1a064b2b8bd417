/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package and its consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"slices"

	"scouting-bot/api/match"
	"scouting-bot/api/store"
)

// MockStore implements the Store interface for testing. Entries are kept in insertion order, like the db's _id order
type MockStore struct {
	// Storage for mock data
	Entries   map[string]*match.Entry
	Order     []string
	Favorites []int
	Event     string

	// Error injection for testing error paths
	StoreEntryError         error
	StoreEntriesError       error
	GetEntryError           error
	GetAllEntriesError      error
	RemoveEntryError        error
	GetFavoriteTeamsError   error
	AddFavoriteTeamError    error
	RemoveFavoriteTeamError error

	Database interface{ Name() string }
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore with default values
func NewMockStore(event string) *MockStore {
	return &MockStore{
		Entries:   make(map[string]*match.Entry),
		Favorites: []int{},
		Event:     event,
		Database:  &mockDatabase{name: "test_db"},
	}
}

// NewMockAPI creates an API backed by a MockStore
func NewMockAPI(event string) (*API, *MockStore) {
	mock := NewMockStore(event)
	return &API{Store: mock}, mock
}

// AddEntries stores entries without going through error injection, for setting up test scenarios
func (m *MockStore) AddEntries(entries ...*match.Entry) {
	for _, entry := range entries {
		m.put(entry)
	}
}

func (m *MockStore) put(entry *match.Entry) {
	if _, ok := m.Entries[entry.Key()]; !ok {
		m.Order = append(m.Order, entry.Key())
	}
	m.Entries[entry.Key()] = entry
}

// StoreEntry mock implementation
func (m *MockStore) StoreEntry(ctx context.Context, entry *match.Entry) error {
	if m.StoreEntryError != nil {
		return m.StoreEntryError
	}
	m.put(entry)
	return nil
}

// StoreEntries mock implementation
func (m *MockStore) StoreEntries(ctx context.Context, entries []*match.Entry) error {
	if m.StoreEntriesError != nil {
		return m.StoreEntriesError
	}
	m.AddEntries(entries...)
	return nil
}

// GetEntry mock implementation
func (m *MockStore) GetEntry(ctx context.Context, key string) (*match.Entry, error) {
	if m.GetEntryError != nil {
		return nil, m.GetEntryError
	}
	entry, ok := m.Entries[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, store.ErrEntryNotFound)
	}
	return entry, nil
}

// GetAllEntries mock implementation
func (m *MockStore) GetAllEntries(ctx context.Context) ([]*match.Entry, error) {
	if m.GetAllEntriesError != nil {
		return nil, m.GetAllEntriesError
	}
	entries := make([]*match.Entry, 0, len(m.Order))
	for _, key := range m.Order {
		entries = append(entries, m.Entries[key])
	}
	return entries, nil
}

// GetTeamEntries mock implementation
func (m *MockStore) GetTeamEntries(ctx context.Context, team int) ([]*match.Entry, error) {
	all, err := m.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	var entries []*match.Entry
	for _, entry := range all {
		if entry.TeamNumber() == team {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// RemoveEntry mock implementation
func (m *MockStore) RemoveEntry(ctx context.Context, key string) error {
	if m.RemoveEntryError != nil {
		return m.RemoveEntryError
	}
	if _, ok := m.Entries[key]; !ok {
		return fmt.Errorf("%s: %w", key, store.ErrEntryNotFound)
	}
	delete(m.Entries, key)
	m.Order = slices.DeleteFunc(m.Order, func(k string) bool { return k == key })
	return nil
}

// GetFavoriteTeams mock implementation
func (m *MockStore) GetFavoriteTeams(ctx context.Context) ([]int, error) {
	if m.GetFavoriteTeamsError != nil {
		return nil, m.GetFavoriteTeamsError
	}
	return slices.Clone(m.Favorites), nil
}

// AddFavoriteTeam mock implementation
func (m *MockStore) AddFavoriteTeam(ctx context.Context, team int) error {
	if m.AddFavoriteTeamError != nil {
		return m.AddFavoriteTeamError
	}
	if !slices.Contains(m.Favorites, team) {
		m.Favorites = append(m.Favorites, team)
	}
	return nil
}

// RemoveFavoriteTeam mock implementation
func (m *MockStore) RemoveFavoriteTeam(ctx context.Context, team int) error {
	if m.RemoveFavoriteTeamError != nil {
		return m.RemoveFavoriteTeamError
	}
	m.Favorites = slices.DeleteFunc(m.Favorites, func(t int) bool { return t == team })
	return nil
}

// Implement getter methods for store.Interface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return m.Database
}

func (m *MockStore) GetEvent() string {
	return m.Event
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

var _ store.Interface = (*MockStore)(nil)
