/* models.go
 * This file contain the structs returned to api consumers (the bot and the web server)
 * Authors: Zachary Bower
 */

package api

import (
	"errors"

	"scouting-bot/api/logic"
	"scouting-bot/api/match"
)

var (
	// ErrNoEntries is returned when a report is requested for a team or event with no scouted entries
	ErrNoEntries = errors.New("no entries found")
	// ErrSheetsNotConfigured is returned by ExportToSheet when no SheetsClient has been set
	ErrSheetsNotConfigured = errors.New("google sheets export is not configured")
)

// MatchSummary is one entry as shown on a team's page
type MatchSummary struct {
	Key        string                 `json:"key"`
	MatchCode  string                 `json:"matchCode"`
	Alliance   match.Alliance         `json:"alliance"`
	Auto       int                    `json:"auto"`
	TeleOp     int                    `json:"teleOp"`
	Endgame    int                    `json:"endgame"`
	Total      int                    `json:"total"`
	Disconnect match.DisconnectStatus `json:"disconnect"`
	Remarks    string                 `json:"remarks,omitempty"`
}

// TeamReport is everything known about a team at the event
type TeamReport struct {
	TeamNumber  int                      `json:"teamNumber"`
	Favorite    bool                     `json:"favorite"`
	Rank        int                      `json:"rank"`
	RankedTeams int                      `json:"rankedTeams"`
	Overview    logic.TeamOverview       `json:"overview"`
	Relative    logic.RelativeStatistics `json:"relative"`
	Matches     []MatchSummary           `json:"matches"`
}

// TeamRanking is a team's position in the event rankings
type TeamRanking struct {
	Rank         int     `json:"rank"`
	TeamNumber   int     `json:"teamNumber"`
	Matches      int     `json:"matches"`
	AverageTotal float64 `json:"averageTotal"`
	Favorite     bool    `json:"favorite"`
}

// ImportResult reports how many entries an import stored
type ImportResult struct {
	Strategy string `json:"strategy"`
	Imported int    `json:"imported"`
}

func newMatchSummary(entry *match.Entry) MatchSummary {
	return MatchSummary{
		Key:        entry.Key(),
		MatchCode:  entry.MatchCode(),
		Alliance:   entry.Alliance(),
		Auto:       entry.AutoScore(),
		TeleOp:     entry.TeleOpScore(),
		Endgame:    entry.EndgameScore(),
		Total:      entry.TotalScore(),
		Disconnect: entry.Disconnect(),
		Remarks:    entry.Remarks(),
	}
}
