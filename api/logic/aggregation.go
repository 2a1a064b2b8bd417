/* aggregation.go
 * Contains the logic for grouping match entries by team and comparing a team against the rest of the event.
 * Every function here works on the full set of entries, which callers load from the store first
 * Authors: Zachary Bower
 */

package logic

import (
	"slices"

	"scouting-bot/api/match"
	"scouting-bot/api/stats"
)

// Extractor pulls a single number out of a match entry so it can be compared between teams
type Extractor func(entry *match.Entry) float64

// CollateByTeam groups entries by team number, keeping the order entries were given in
func CollateByTeam(entries []*match.Entry) map[int][]*match.Entry {
	collated := make(map[int][]*match.Entry)
	for _, entry := range entries {
		collated[entry.TeamNumber()] = append(collated[entry.TeamNumber()], entry)
	}
	return collated
}

// TeamNumbers returns the teams in a collated map in ascending order
func TeamNumbers(collated map[int][]*match.Entry) []int {
	teams := make([]int, 0, len(collated))
	for team := range collated {
		teams = append(teams, team)
	}
	slices.Sort(teams)
	return teams
}

// EntriesForTeam returns the entries recorded for a team, keeping their order
func EntriesForTeam(entries []*match.Entry, team int) []*match.Entry {
	var teamEntries []*match.Entry
	for _, entry := range entries {
		if entry.TeamNumber() == team {
			teamEntries = append(teamEntries, entry)
		}
	}
	return teamEntries
}

// Extract applies an extractor to every entry
func Extract(entries []*match.Entry, extract Extractor) []float64 {
	values := make([]float64, len(entries))
	for i, entry := range entries {
		values[i] = extract(entry)
	}
	return values
}

// ComparativeRatio returns the fraction of all entries at the event that the team's average beats
// Preconditions: Receives every entry at the event, the entries of one team and the value to compare
// Postconditions: Returns a value in [0, 1], or NaN if there are no entries at the event
func ComparativeRatio(all, team []*match.Entry, extract Extractor) float64 {
	return stats.OverRatio(Extract(all, extract), stats.Average(Extract(team, extract)))
}

// Reliability returns how often an attempted task succeeded. Tasks the team did not try are not attempts
// Postconditions: Returns SCORED / (SCORED + FAILED), or 0 if the task was never attempted
func Reliability(results []match.ScoringResult) float64 {
	scored := stats.Count(results, match.Scored)
	attempts := len(results) - stats.Count(results, match.DidNotTry)
	if attempts == 0 {
		return 0
	}
	return float64(scored) / float64(attempts)
}

// AverageTotal returns a team's average total score
func AverageTotal(entries []*match.Entry) float64 {
	return stats.Average(Extract(entries, func(entry *match.Entry) float64 { return float64(entry.TotalScore()) }))
}

// TeamRank ranks a team's average total score against the average total of every team at the event
// Preconditions: Receives every entry at the event and a team number
// Postconditions: Returns the team's position (1 is best, tied averages share a position) and the number of distinct
// averages
func TeamRank(all []*match.Entry, team int) (int, int) {
	collated := CollateByTeam(all)
	averages := make([]float64, 0, len(collated))
	for _, teamEntries := range collated {
		averages = append(averages, AverageTotal(teamEntries))
	}
	return stats.Rank(averages, AverageTotal(collated[team]))
}

// SortByMatchCode sorts entries in the order the matches were played. Entries in the same match keep their order
func SortByMatchCode(entries []*match.Entry) {
	slices.SortStableFunc(entries, func(a, b *match.Entry) int {
		return match.CompareMatchCodes(a.MatchCode(), b.MatchCode())
	})
}
