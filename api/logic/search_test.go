/* search_test.go
 * Contains unit tests for search.go
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scouting-bot/api/match"
)

func withRemarks(remarks string) func(r *match.Record) {
	return func(r *match.Record) {
		r.Remarks = remarks
	}
}

func TestSearchRemarks(t *testing.T) {
	fast := newTestEntry(t, "Q1", 1, withRemarks("Fast cycler"))
	slow := newTestEntry(t, "Q2", 2, withRemarks("slow but fast cycler when it works"))
	none := newTestEntry(t, "Q3", 3, nil)
	other := newTestEntry(t, "Q4", 4, withRemarks("tipped the shared hub"))

	results := SearchRemarks([]*match.Entry{slow, none, other, fast}, "fast cycler")

	require.Len(t, results, 2)
	assert.Equal(t, fast, results[0].Entry)
	assert.Equal(t, slow, results[1].Entry)
	assert.Less(t, results[0].Distance, results[1].Distance)
}

func TestSearchRemarks_MissingCharacters(t *testing.T) {
	entry := newTestEntry(t, "Q1", 1, withRemarks("great capping"))

	results := SearchRemarks([]*match.Entry{entry}, "cping")
	require.Len(t, results, 1)
	assert.Equal(t, entry, results[0].Entry)
}

func TestSearchRemarks_DuplicateRemarks(t *testing.T) {
	a := newTestEntry(t, "Q1", 1, withRemarks("disconnected"))
	b := newTestEntry(t, "Q2", 2, withRemarks("Disconnected"))

	results := SearchRemarks([]*match.Entry{a, b}, "disconnect")
	require.Len(t, results, 2)
	assert.Equal(t, a, results[0].Entry)
	assert.Equal(t, b, results[1].Entry)
}

func TestSearchRemarks_EmptyQuery(t *testing.T) {
	entry := newTestEntry(t, "Q1", 1, withRemarks("anything"))
	assert.Empty(t, SearchRemarks([]*match.Entry{entry}, "  "))
}
