/* overview.go
 * Contains the per team overview shown in the event table and the relative statistics shown on a team's page
 * Authors: Zachary Bower
 */

package logic

import (
	"scouting-bot/api/match"
	"scouting-bot/api/stats"
)

// TeamOverview is a team's averages over every match it was scouted in
type TeamOverview struct {
	TeamNumber int `json:"teamNumber"`
	Matches    int `json:"matches"`

	AutoDuckReliability    float64 `json:"autoDuckReliability"`
	PreLoadReliability     float64 `json:"preLoadReliability"`
	AutoHubFreightAvg      float64 `json:"autoHubFreightAvg"`
	AutoParkAvg            float64 `json:"autoParkAvg"`
	AutoTotalAvg           float64 `json:"autoTotalAvg"`
	AutoPenaltiesAvg       float64 `json:"autoPenaltiesAvg"`
	TeleOpHubFreightAvg    float64 `json:"teleOpHubFreightAvg"`
	SharedHubFreightAvg    float64 `json:"sharedHubFreightAvg"`
	StorageUnitFreightAvg  float64 `json:"storageUnitFreightAvg"`
	TeleOpTotalAvg         float64 `json:"teleOpTotalAvg"`
	TeleOpPenaltiesAvg     float64 `json:"teleOpPenaltiesAvg"`
	EndgameDucksAvg        float64 `json:"endgameDucksAvg"`
	TseCapRate             float64 `json:"tseCapRate"`
	AllianceHubBalanceRate float64 `json:"allianceHubBalanceRate"`
	EndgameParkAvg         float64 `json:"endgameParkAvg"`
	EndgameTotalAvg        float64 `json:"endgameTotalAvg"`
	EndgamePenaltiesAvg    float64 `json:"endgamePenaltiesAvg"`
	AverageContribution    float64 `json:"averageContribution"`
	PenaltiesAvg           float64 `json:"penaltiesAvg"`
}

// RelativeStatistics holds the fraction of event entries a team's average beats in each area of the game
type RelativeStatistics struct {
	PreLoadOver   float64 `json:"preLoadOver"`
	AutoDuckOver  float64 `json:"autoDuckOver"`
	AutoOver      float64 `json:"autoOver"`
	HubScoreOver  float64 `json:"hubScoreOver"`
	SharedHubOver float64 `json:"sharedHubOver"`
	TeleOpOver    float64 `json:"teleOpOver"`
	EndDuckOver   float64 `json:"endDuckOver"`
	EndgameOver   float64 `json:"endgameOver"`
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// autoParkValue scores parking as 1 for completely parked and 0.5 for partially parked, in either zone
func autoParkValue(entry *match.Entry) float64 {
	switch entry.Auto().Parked {
	case match.CompletelyInStorageUnit, match.CompletelyInWarehouse:
		return 1
	case match.PartiallyInStorageUnit, match.PartiallyInWarehouse:
		return 0.5
	}
	return 0
}

func endgameParkValue(entry *match.Entry) float64 {
	switch entry.Endgame().Parked {
	case match.EndgameCompletelyIn:
		return 1
	case match.EndgamePartiallyIn:
		return 0.5
	}
	return 0
}

func average(entries []*match.Entry, extract Extractor) float64 {
	return stats.Average(Extract(entries, extract))
}

func collectResults(entries []*match.Entry, pick func(entry *match.Entry) match.ScoringResult) []match.ScoringResult {
	results := make([]match.ScoringResult, len(entries))
	for i, entry := range entries {
		results[i] = pick(entry)
	}
	return results
}

// AnalyzeOverview computes the averages for a single team
// Preconditions: Receives the entries of one team
// Postconditions: Returns the team's overview. An empty slice returns a zero overview
func AnalyzeOverview(entries []*match.Entry) TeamOverview {
	if len(entries) == 0 {
		return TeamOverview{}
	}

	return TeamOverview{
		TeamNumber: entries[0].TeamNumber(),
		Matches:    len(entries),

		AutoDuckReliability: Reliability(collectResults(entries, func(e *match.Entry) match.ScoringResult {
			return e.Auto().DeliveredCarouselDuck
		})),
		PreLoadReliability: Reliability(collectResults(entries, func(e *match.Entry) match.ScoringResult {
			return e.Auto().DeliveredPreLoaded
		})),
		AutoHubFreightAvg: average(entries, func(e *match.Entry) float64 {
			levels := e.Auto().FreightScoredPerLevel
			return float64(stats.Sum(levels[:]))
		}),
		AutoParkAvg:      average(entries, autoParkValue),
		AutoTotalAvg:     average(entries, func(e *match.Entry) float64 { return float64(e.AutoScore()) }),
		AutoPenaltiesAvg: average(entries, func(e *match.Entry) float64 { return float64(e.PenaltyPoints(match.Autonomous)) }),

		TeleOpHubFreightAvg: average(entries, func(e *match.Entry) float64 {
			levels := e.TeleOp().FreightScoredPerLevel
			return float64(stats.Sum(levels[:]))
		}),
		SharedHubFreightAvg:   average(entries, func(e *match.Entry) float64 { return float64(e.TeleOp().FreightScoredOnSharedHub) }),
		StorageUnitFreightAvg: average(entries, func(e *match.Entry) float64 { return float64(e.TeleOp().FreightScoredInStorageUnit) }),
		TeleOpTotalAvg:        average(entries, func(e *match.Entry) float64 { return float64(e.TeleOpScore()) }),
		TeleOpPenaltiesAvg:    average(entries, func(e *match.Entry) float64 { return float64(e.PenaltyPoints(match.TeleOp)) }),

		EndgameDucksAvg: average(entries, func(e *match.Entry) float64 { return float64(e.Endgame().DucksDelivered) }),
		// DID_NOT_TRY counts as a miss
		TseCapRate:             average(entries, func(e *match.Entry) float64 { return boolToFloat(e.Endgame().TseScored == match.Scored) }),
		AllianceHubBalanceRate: average(entries, func(e *match.Entry) float64 { return boolToFloat(e.Endgame().AllianceHubTipped == match.Balanced) }),
		EndgameParkAvg:         average(entries, endgameParkValue),
		EndgameTotalAvg:        average(entries, func(e *match.Entry) float64 { return float64(e.EndgameScore()) }),
		EndgamePenaltiesAvg:    average(entries, func(e *match.Entry) float64 { return float64(e.PenaltyPoints(match.Endgame)) }),

		AverageContribution: AverageTotal(entries),
		PenaltiesAvg:        average(entries, func(e *match.Entry) float64 { return float64(e.PenaltyPoints("")) }),
	}
}

// AnalyzeAll computes the overview of every team, ordered by team number
func AnalyzeAll(entries []*match.Entry) []TeamOverview {
	collated := CollateByTeam(entries)
	overviews := make([]TeamOverview, 0, len(collated))
	for _, team := range TeamNumbers(collated) {
		overviews = append(overviews, AnalyzeOverview(collated[team]))
	}
	return overviews
}

// RelativeStats compares a team against every entry at the event
// Preconditions: Receives every entry at the event and a team number
// Postconditions: Returns the comparative ratio of the team in each area. Values are NaN when there are no entries
func RelativeStats(all []*match.Entry, team int) RelativeStatistics {
	teamEntries := EntriesForTeam(all, team)
	ratio := func(extract Extractor) float64 {
		return ComparativeRatio(all, teamEntries, extract)
	}

	return RelativeStatistics{
		PreLoadOver:   ratio(func(e *match.Entry) float64 { return boolToFloat(e.Auto().DeliveredPreLoaded == match.Scored) }),
		AutoDuckOver:  ratio(func(e *match.Entry) float64 { return boolToFloat(e.Auto().DeliveredCarouselDuck == match.Scored) }),
		AutoOver:      ratio(func(e *match.Entry) float64 { return float64(e.AutoScore()) }),
		HubScoreOver:  ratio(func(e *match.Entry) float64 { return float64(e.CombinedZoneScore()) }),
		SharedHubOver: ratio(func(e *match.Entry) float64 { return float64(e.TeleOp().FreightScoredOnSharedHub * 4) }),
		TeleOpOver:    ratio(func(e *match.Entry) float64 { return float64(e.TeleOpScore()) }),
		EndDuckOver:   ratio(func(e *match.Entry) float64 { return float64(e.Endgame().DucksDelivered) }),
		EndgameOver:   ratio(func(e *match.Entry) float64 { return float64(e.EndgameScore()) }),
	}
}
