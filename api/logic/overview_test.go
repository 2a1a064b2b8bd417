/* overview_test.go
 * Contains unit tests for overview.go
 * Authors: Zachary Bower
 */

package logic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"scouting-bot/api/match"
)

func overviewEntries(t *testing.T) []*match.Entry {
	first := newTestEntry(t, "Q1", 8644, func(r *match.Record) {
		r.Auto.DeliveredCarouselDuck = match.Scored
		r.Auto.DeliveredPreLoaded = match.Failed
		r.Auto.FreightScoredPerLevel = [3]int{1, 0, 1}
		r.Auto.Parked = match.CompletelyInWarehouse
		r.Auto.WarningsPenalties = match.WarningsPenalties{0, 1, 0}
		r.TeleOp.FreightScoredOnSharedHub = 4
		r.TeleOp.FreightScoredInStorageUnit = 2
		r.TeleOp.FreightScoredPerLevel = [3]int{0, 0, 3}
		r.Endgame.DuckDeliveryAttempted = true
		r.Endgame.DucksDelivered = 4
		r.Endgame.AllianceHubTipped = match.Balanced
		r.Endgame.Parked = match.EndgameCompletelyIn
		r.Endgame.TseScored = match.Scored
	})
	second := newTestEntry(t, "Q2", 8644, func(r *match.Record) {
		r.Auto.DeliveredCarouselDuck = match.DidNotTry
		r.Auto.DeliveredPreLoaded = match.Scored
		r.Auto.Parked = match.PartiallyInStorageUnit
		r.TeleOp.FreightScoredOnSharedHub = 2
		r.TeleOp.FreightScoredPerLevel = [3]int{1, 0, 0}
		r.TeleOp.WarningsPenalties = match.WarningsPenalties{0, 0, 1}
		r.Endgame.Parked = match.EndgamePartiallyIn
		r.Endgame.TseScored = match.DidNotTry
	})
	return []*match.Entry{first, second}
}

// TestAnalyzeOverview tests the averages of a team with two matches
func TestAnalyzeOverview(t *testing.T) {
	overview := AnalyzeOverview(overviewEntries(t))

	assert.Equal(t, 8644, overview.TeamNumber)
	assert.Equal(t, 2, overview.Matches)

	assert.Equal(t, 1.0, overview.AutoDuckReliability)
	assert.Equal(t, 0.5, overview.PreLoadReliability)
	assert.Equal(t, 1.0, overview.AutoHubFreightAvg)
	assert.Equal(t, 0.75, overview.AutoParkAvg)
	// (10 + 12 + 10 - 10) and (10 + 3)
	assert.Equal(t, 17.5, overview.AutoTotalAvg)
	assert.Equal(t, 5.0, overview.AutoPenaltiesAvg)

	assert.Equal(t, 2.0, overview.TeleOpHubFreightAvg)
	assert.Equal(t, 3.0, overview.SharedHubFreightAvg)
	assert.Equal(t, 1.0, overview.StorageUnitFreightAvg)
	// (16 + 2 + 2 + 24) and (8 + 2 - 20)
	assert.Equal(t, 17.0, overview.TeleOpTotalAvg)
	assert.Equal(t, 10.0, overview.TeleOpPenaltiesAvg)

	assert.Equal(t, 2.0, overview.EndgameDucksAvg)
	assert.Equal(t, 0.5, overview.TseCapRate)
	assert.Equal(t, 0.5, overview.AllianceHubBalanceRate)
	assert.Equal(t, 0.75, overview.EndgameParkAvg)
	// (24 + 10 + 6 + 15) and 3
	assert.Equal(t, 29.0, overview.EndgameTotalAvg)
	assert.Equal(t, 0.0, overview.EndgamePenaltiesAvg)

	assert.Equal(t, 63.5, overview.AverageContribution)
	assert.Equal(t, 15.0, overview.PenaltiesAvg)
}

func TestAnalyzeOverview_Empty(t *testing.T) {
	assert.Equal(t, TeamOverview{}, AnalyzeOverview(nil))
}

func TestAnalyzeAll(t *testing.T) {
	entries := append(overviewEntries(t), newTestEntry(t, "Q1", 4410, nil))

	overviews := AnalyzeAll(entries)
	assert.Len(t, overviews, 2)
	assert.Equal(t, 4410, overviews[0].TeamNumber)
	assert.Equal(t, 1, overviews[0].Matches)
	assert.Equal(t, 8644, overviews[1].TeamNumber)
	assert.Equal(t, 2, overviews[1].Matches)
}

// TestRelativeStats tests a team compared against the whole event
func TestRelativeStats(t *testing.T) {
	entries := append(overviewEntries(t),
		newTestEntry(t, "Q1", 4410, nil),
		newTestEntry(t, "Q2", 4410, func(r *match.Record) { r.Auto.DeliveredPreLoaded = match.Scored }),
	)

	relative := RelativeStats(entries, 8644)

	// 8644 scored the pre-load half the time, beating the two entries that did not score it
	assert.Equal(t, 0.5, relative.PreLoadOver)
	assert.Equal(t, 0.75, relative.AutoDuckOver)
	// 8644 auto avg 17.5 beats 13, 0, 10
	assert.Equal(t, 0.75, relative.AutoOver)
	assert.Equal(t, 0.75, relative.HubScoreOver)
	assert.Equal(t, 0.75, relative.SharedHubOver)
	assert.Equal(t, 0.75, relative.EndDuckOver)

	relative = RelativeStats(entries, 4410)
	assert.Equal(t, 0.0, relative.AutoDuckOver)
}

func TestRelativeStats_NoEntries(t *testing.T) {
	relative := RelativeStats(nil, 1)
	assert.True(t, math.IsNaN(relative.AutoOver))
}
