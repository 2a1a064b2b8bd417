/* records_test.go
 * Contains unit tests for records.go
 * Authors: Zachary Bower
 */

package match

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legacyEntryJSON is an entry written before disconnect, season and the duck attempt flag were recorded
const legacyEntryJSON = `{
	"matchCode": "Q7",
	"teamNumber": 14875,
	"alliance": "BLUE",
	"auto": {
		"usedTse": "FAILED",
		"deliveredPreLoaded": "SCORED",
		"deliveredCarouselDuck": "SCORED",
		"freightScoredPerLevel": [1, 0, 0],
		"freightScoredInStorageUnit": 1,
		"parked": "PARTIALLY_IN_WAREHOUSE",
		"warningsPenalties": [0, 0, 0]
	},
	"teleOp": {
		"freightScoredOnSharedHub": 3,
		"freightScoredInStorageUnit": 2,
		"freightScoredPerLevel": [2, 1, 4],
		"warningsPenalties": [1, 1, 0]
	},
	"endgame": {
		"ducksDelivered": 2,
		"allianceHubTipped": "BALANCED",
		"sharedHubTipped": "TIPPED_OPP",
		"parked": "PARTIALLY_IN",
		"tseScored": "DID_NOT_TRY",
		"warningsPenalties": [0, 0, 0]
	}
}`

// region Round trip tests

func TestEntry_JSONRoundTrip(t *testing.T) {
	entry, err := NewEntry(robostormF1())
	require.NoError(t, err)

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	restored, err := ParseEntry(data)
	require.NoError(t, err)

	assert.Equal(t, entry.Record(), restored.Record())
	assert.Equal(t, entry.AutoScore(), restored.AutoScore())
	assert.Equal(t, entry.TeleOpScore(), restored.TeleOpScore())
	assert.Equal(t, entry.EndgameScore(), restored.EndgameScore())
	assert.Equal(t, entry.TotalScore(), restored.TotalScore())
}

func TestEntry_JSONShape(t *testing.T) {
	entry, err := NewEntry(robostormF1())
	require.NoError(t, err)

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, field := range []string{"matchCode", "teamNumber", "alliance", "auto", "teleOp", "endgame", "disconnect", "remarks", "season"} {
		assert.Contains(t, doc, field)
	}
	assert.Equal(t, "F1", doc["matchCode"])
	assert.Equal(t, 8644.0, doc["teamNumber"])
	assert.Equal(t, "NONE", doc["disconnect"])
	assert.Equal(t, "FREIGHT_FRENZY", doc["season"])
}

func TestEntry_RemarksOmittedWhenEmpty(t *testing.T) {
	entry, err := NewEntry(emptyRecord())
	require.NoError(t, err)

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "remarks")
}

// endregion

// region ParseEntry tests

func TestParseEntry_Backfill(t *testing.T) {
	entry, err := ParseEntry([]byte(legacyEntryJSON))
	require.NoError(t, err)

	assert.Equal(t, NoDisconnect, entry.Disconnect())
	assert.Equal(t, FreightFrenzy, entry.Season())
	assert.True(t, entry.Endgame().DuckDeliveryAttempted)
	assert.Equal(t, 2, entry.Endgame().DucksDelivered)

	// 10 duck + 10 pre-load + 2 storage unit + 6 hub + 5 park
	assert.Equal(t, 33, entry.AutoScore())
	// 2 storage unit + 12 shared hub + (3*2 + 1*4 + 4*6) combined - 10
	assert.Equal(t, 2+12+34-10, entry.TeleOpScore())
	// 12 ducks + 10 balanced + 3 park
	assert.Equal(t, 25, entry.EndgameScore())
}

func TestParseEntry_ExplicitFieldsAreKept(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(legacyEntryJSON), &doc))
	doc["disconnect"] = "PARTIAL"
	doc["endgame"].(map[string]any)["duckDeliveryAttempted"] = false
	doc["endgame"].(map[string]any)["ducksDelivered"] = 0
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	entry, err := ParseEntry(data)
	require.NoError(t, err)
	assert.Equal(t, PartialDisconnect, entry.Disconnect())
	assert.False(t, entry.Endgame().DuckDeliveryAttempted)
}

func TestParseEntry_Invalid(t *testing.T) {
	_, err := ParseEntry([]byte(`{"matchCode": 12}`))
	assert.ErrorContains(t, err, "error decoding entry")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseEntry([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseEntry([]byte(`{"matchCode": "Q1", "teamNumber": 1.5, "alliance": "RED"}`))
	assert.ErrorIs(t, err, ErrInvalidTeamNumber)

	_, err = ParseEntry([]byte(`{"matchCode": "Q1", "teamNumber": 3, "alliance": "RED", "season": "ROVER_RUCKUS"}`))
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestParseEntries(t *testing.T) {
	first, err := NewEntry(robostormF1())
	require.NoError(t, err)
	second, err := NewEntry(emptyRecord())
	require.NoError(t, err)

	data, err := json.Marshal([]*Entry{first, second})
	require.NoError(t, err)

	entries, err := ParseEntries(data)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "F1:8644", entries[0].Key())
	assert.Equal(t, "Q2:1", entries[1].Key())
}

func TestParseEntries_ReportsIndex(t *testing.T) {
	data := []byte(`[` + legacyEntryJSON + `, {"matchCode": "Q0", "teamNumber": 1, "alliance": "RED"}]`)

	_, err := ParseEntries(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMatchCode)
	assert.Contains(t, err.Error(), "entry 1")
}

// endregion

func TestParseEntry_TupleLengths(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		expected string
	}{
		{"extra penalty", `"warningsPenalties": [1, 1, 0]`, `"warningsPenalties": [1, 1, 0, 7]`, "teleOp.warningsPenalties has 4 elements"},
		{"extra level", `"freightScoredPerLevel": [2, 1, 4]`, `"freightScoredPerLevel": [2, 1, 4, 99]`, "teleOp.freightScoredPerLevel has 4 elements"},
		{"missing level", `"freightScoredPerLevel": [1, 0, 0]`, `"freightScoredPerLevel": [1, 0]`, "auto.freightScoredPerLevel has 2 elements"},
		{"empty penalties", `"warningsPenalties": [0, 0, 0]
	}
}`, `"warningsPenalties": []
	}
}`, "endgame.warningsPenalties has 0 elements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(legacyEntryJSON, tt.old, tt.new, 1)
			require.NotEqual(t, legacyEntryJSON, data)

			_, err := ParseEntry([]byte(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.ErrorContains(t, err, tt.expected)
		})
	}

	_, err := ParseEntries([]byte(`[` + strings.Replace(legacyEntryJSON, `[2, 1, 4]`, `[2, 1, 4, 99]`, 1) + `]`))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorContains(t, err, "entry 0")
}

// region Backfill tests

func TestBackfill(t *testing.T) {
	record := Record{Endgame: EndgamePerformance{DucksDelivered: 0}}
	Backfill(&record, func(path ...string) bool { return false })

	assert.Equal(t, NoDisconnect, record.Disconnect)
	assert.Equal(t, DefaultSeason, record.Season)
	assert.False(t, record.Endgame.DuckDeliveryAttempted)
}

func TestBackfill_PresentFieldsUntouched(t *testing.T) {
	record := Record{Disconnect: TotalDisconnect, Season: "SOMETHING_ELSE", Endgame: EndgamePerformance{DucksDelivered: 3}}
	Backfill(&record, func(path ...string) bool { return true })

	assert.Equal(t, TotalDisconnect, record.Disconnect)
	assert.Equal(t, Season("SOMETHING_ELSE"), record.Season)
	assert.False(t, record.Endgame.DuckDeliveryAttempted)
}

func TestMapPresence(t *testing.T) {
	present := MapPresence(map[string]any{
		"disconnect": "NONE",
		"endgame":    map[string]any{"ducksDelivered": 1.0},
	})

	assert.True(t, present("disconnect"))
	assert.True(t, present("endgame"))
	assert.True(t, present("endgame", "ducksDelivered"))
	assert.False(t, present("endgame", "duckDeliveryAttempted"))
	assert.False(t, present("disconnect", "nested"))
	assert.False(t, present("season"))
	assert.False(t, present("endgame", "ducksDelivered", "deeper"))
}

// endregion

func TestNewEntries(t *testing.T) {
	records := []Record{robostormF1(), emptyRecord()}
	entries, err := NewEntries(records)
	require.NoError(t, err)
	assert.Equal(t, records[0].Remarks, entries[0].Remarks())
	assert.Equal(t, "Q2", Records(entries)[1].MatchCode)

	records[1].TeamNumber = 0
	_, err = NewEntries(records)
	assert.ErrorIs(t, err, ErrInvalidTeamNumber)
}
