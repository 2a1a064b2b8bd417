/* helpers_test.go
 * Contains helpers shared by the logic tests
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scouting-bot/api/match"
)

// newTestEntry builds a valid entry for a team that did nothing, then applies modify before validating it
func newTestEntry(t *testing.T, code string, team int, modify func(r *match.Record)) *match.Entry {
	t.Helper()
	record := match.Record{
		MatchCode:  code,
		TeamNumber: float64(team),
		Alliance:   match.AllianceBlue,
		Auto:       match.EmptyAutonomous(),
		TeleOp:     match.EmptyTeleOp(),
		Endgame:    match.EmptyEndgame(),
		Disconnect: match.NoDisconnect,
	}
	// Tipped alliance hub so an untouched entry scores 0
	record.Endgame.AllianceHubTipped = match.Tipped
	if modify != nil {
		modify(&record)
	}
	entry, err := match.NewEntry(record)
	require.NoError(t, err)
	return entry
}

// withAutoStorage sets the autonomous storage unit count, each freight is worth 2 points
func withAutoStorage(freight int) func(r *match.Record) {
	return func(r *match.Record) {
		r.Auto.FreightScoredInStorageUnit = freight
	}
}
