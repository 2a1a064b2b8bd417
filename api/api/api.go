/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for match, logic and store
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"scouting-bot/api/external"
	"scouting-bot/api/logic"
	"scouting-bot/api/match"
	"scouting-bot/api/stats"
	"scouting-bot/api/store"
)

// API provides methods for interacting with the scouting data layer
type API struct {
	Store  store.Interface
	Sheets *external.SheetsClient
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(ctx context.Context, dbName string, mongoURI string, event string) (*API, error) {
	if dbName == "" || event == "" {
		return nil, fmt.Errorf("dbName and event are required")
	}

	s, err := store.NewStore(ctx, dbName, mongoURI, event)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store: s,
	}, nil
}

func percent(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}

func validTeam(team int) error {
	if team <= 0 {
		return fmt.Errorf("%w: %d", match.ErrInvalidTeamNumber, team)
	}
	return nil
}

func (a *API) storeEntry(ctx context.Context, entry *match.Entry) error {
	if err := a.Store.StoreEntry(ctx, entry); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"key":   entry.Key(),
		"event": a.Store.GetEvent(),
		"total": entry.TotalScore(),
	}).Info("stored entry")
	return nil
}

// region Entries

// SubmitEntry validates a record and stores it, replacing any entry already scouted for the same match and team.
// Validation errors are returned as *match.ValidationError
func (a *API) SubmitEntry(ctx context.Context, record match.Record) (*match.Entry, error) {
	entry, err := match.NewEntry(record)
	if err != nil {
		return nil, err
	}
	if err := a.storeEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SubmitEntryJSON decodes a serialized entry, backfilling fields older clients do not send, and stores it
func (a *API) SubmitEntryJSON(ctx context.Context, data []byte) (*match.Entry, error) {
	entry, err := match.ParseEntry(data)
	if err != nil {
		return nil, err
	}
	if err := a.storeEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntry fetches the entry stored under a key such as "Q12:12897"
// Postconditions: Returns the entry, an error wrapping store.ErrEntryNotFound if there is none, or a validation error
// if the key is malformed
func (a *API) GetEntry(ctx context.Context, key string) (*match.Entry, error) {
	if _, _, err := match.ParseEntryKey(key); err != nil {
		return nil, err
	}
	return a.Store.GetEntry(ctx, key)
}

// RemoveEntry deletes the entry stored under a key
func (a *API) RemoveEntry(ctx context.Context, key string) error {
	if _, _, err := match.ParseEntryKey(key); err != nil {
		return err
	}
	if err := a.Store.RemoveEntry(ctx, key); err != nil {
		return err
	}
	log.WithFields(log.Fields{"key": key, "event": a.Store.GetEvent()}).Info("removed entry")
	return nil
}

// EntrySummary generates a response string describing a single scouted entry
// Preconditions: Receives a match code and team number
// Postconditions: Returns the period scores, total, disconnect status and remarks, or an error if it occurs
func (a *API) EntrySummary(ctx context.Context, matchCode string, team int) (string, error) {
	entry, err := a.GetEntry(ctx, match.EntryKey(matchCode, team))
	if err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Team %d in %s (%s alliance):\n", entry.TeamNumber(), entry.MatchCode(), entry.Alliance()))
	response.WriteString(fmt.Sprintf("- Autonomous: %d (penalties -%d)\n", entry.AutoScore(), entry.PenaltyPoints(match.Autonomous)))
	response.WriteString(fmt.Sprintf("- TeleOp: %d (penalties -%d)\n", entry.TeleOpScore(), entry.PenaltyPoints(match.TeleOp)))
	response.WriteString(fmt.Sprintf("- Endgame: %d (penalties -%d)\n", entry.EndgameScore(), entry.PenaltyPoints(match.Endgame)))
	response.WriteString(fmt.Sprintf("Total: %d\n", entry.TotalScore()))
	if entry.Disconnect() != match.NoDisconnect {
		response.WriteString(fmt.Sprintf("Disconnect: %s\n", entry.Disconnect()))
	}
	if entry.Remarks() != "" {
		response.WriteString(fmt.Sprintf("Remarks: %s\n", entry.Remarks()))
	}
	return response.String(), nil
}

// endregion

// region Reports

// GetTeamReport gathers a team's averages, rank and relative statistics along with its matches in the order they
// were played
// Postconditions: Returns the report, or an error wrapping ErrNoEntries if the team has not been scouted
func (a *API) GetTeamReport(ctx context.Context, team int) (TeamReport, error) {
	if err := validTeam(team); err != nil {
		return TeamReport{}, err
	}

	all, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return TeamReport{}, err
	}

	teamEntries := logic.EntriesForTeam(all, team)
	if len(teamEntries) == 0 {
		return TeamReport{}, fmt.Errorf("team %d: %w", team, ErrNoEntries)
	}
	logic.SortByMatchCode(teamEntries)

	favorites, err := a.Store.GetFavoriteTeams(ctx)
	if err != nil {
		return TeamReport{}, err
	}

	rank, ranked := logic.TeamRank(all, team)
	matches := make([]MatchSummary, 0, len(teamEntries))
	for _, entry := range teamEntries {
		matches = append(matches, newMatchSummary(entry))
	}

	return TeamReport{
		TeamNumber:  team,
		Favorite:    slices.Contains(favorites, team),
		Rank:        rank,
		RankedTeams: ranked,
		Overview:    logic.AnalyzeOverview(teamEntries),
		Relative:    logic.RelativeStats(all, team),
		Matches:     matches,
	}, nil
}

// TeamSummary generates a response string from a team's report
func (a *API) TeamSummary(ctx context.Context, team int) (string, error) {
	report, err := a.GetTeamReport(ctx, team)
	if err != nil {
		return "", err
	}
	o := report.Overview
	r := report.Relative

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Team %d", team))
	if report.Favorite {
		response.WriteString(" ⭐")
	}
	response.WriteString(fmt.Sprintf(", ranked %d/%d by average total\n", report.Rank, report.RankedTeams))
	response.WriteString(fmt.Sprintf("Matches scouted: %d\n", o.Matches))
	response.WriteString(fmt.Sprintf("Averages: auto %.2f, teleop %.2f, endgame %.2f, contribution %.2f, penalties %.2f\n",
		o.AutoTotalAvg, o.TeleOpTotalAvg, o.EndgameTotalAvg, o.AverageContribution, o.PenaltiesAvg))
	response.WriteString(fmt.Sprintf("Reliability: pre-load %s, auto duck %s, TSE cap %s, hub balanced %s\n",
		percent(o.PreLoadReliability), percent(o.AutoDuckReliability), percent(o.TseCapRate), percent(o.AllianceHubBalanceRate)))
	response.WriteString(fmt.Sprintf("Better than: auto %s, alliance hub %s, shared hub %s, teleop %s, endgame %s of entries\n",
		percent(r.AutoOver), percent(r.HubScoreOver), percent(r.SharedHubOver), percent(r.TeleOpOver), percent(r.EndgameOver)))
	response.WriteString("Matches:\n")
	for _, m := range report.Matches {
		response.WriteString(fmt.Sprintf("- %s: %d (%d/%d/%d)", m.MatchCode, m.Total, m.Auto, m.TeleOp, m.Endgame))
		if m.Disconnect != match.NoDisconnect {
			response.WriteString(fmt.Sprintf(" [%s disconnect]", m.Disconnect))
		}
		response.WriteString("\n")
	}
	return response.String(), nil
}

// GetOverview computes the overview of every scouted team, ordered by team number
func (a *API) GetOverview(ctx context.Context) ([]logic.TeamOverview, error) {
	all, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	return logic.AnalyzeAll(all), nil
}

// OverviewSummary generates a response string with one line per team
func (a *API) OverviewSummary(ctx context.Context) (string, error) {
	overviews, err := a.GetOverview(ctx)
	if err != nil {
		return "", err
	}
	if len(overviews) == 0 {
		return "", ErrNoEntries
	}

	var response strings.Builder
	response.WriteString("Team overview (auto / teleop / endgame / contribution):\n")
	for _, o := range overviews {
		response.WriteString(fmt.Sprintf("%d: %.1f / %.1f / %.1f / %.1f over %d matches\n",
			o.TeamNumber, o.AutoTotalAvg, o.TeleOpTotalAvg, o.EndgameTotalAvg, o.AverageContribution, o.Matches))
	}
	return response.String(), nil
}

// GetRankings ranks every scouted team by average total score. Teams with the same average share a position
// Postconditions: Returns the rankings ordered by position then team number, ErrNoEntries if nothing has been
// scouted, or an error if it occurs
func (a *API) GetRankings(ctx context.Context) ([]TeamRanking, error) {
	all, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoEntries
	}
	favorites, err := a.Store.GetFavoriteTeams(ctx)
	if err != nil {
		return nil, err
	}

	collated := logic.CollateByTeam(all)
	teams := logic.TeamNumbers(collated)
	averages := make([]float64, len(teams))
	for i, team := range teams {
		averages[i] = logic.AverageTotal(collated[team])
	}

	rankings := make([]TeamRanking, 0, len(teams))
	for i, team := range teams {
		rank, _ := stats.Rank(averages, averages[i])
		rankings = append(rankings, TeamRanking{
			Rank:         rank,
			TeamNumber:   team,
			Matches:      len(collated[team]),
			AverageTotal: averages[i],
			Favorite:     slices.Contains(favorites, team),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].Rank != rankings[j].Rank {
			return rankings[i].Rank < rankings[j].Rank
		}
		return rankings[i].TeamNumber < rankings[j].TeamNumber
	})
	return rankings, nil
}

// RankingsSummary generates a response string listing the event rankings
func (a *API) RankingsSummary(ctx context.Context) (string, error) {
	rankings, err := a.GetRankings(ctx)
	if err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString("The teams with the best average totals are:\n")
	for _, r := range rankings {
		response.WriteString(fmt.Sprintf("%d. %d", r.Rank, r.TeamNumber))
		if r.Favorite {
			response.WriteString(" ⭐")
		}
		response.WriteString(fmt.Sprintf(", %.2f over %d matches\n", r.AverageTotal, r.Matches))
	}
	return response.String(), nil
}

// EventInfo gets the following information about the event: Event, Database, Season, Entries, Teams.
// It returns a string slice with the contents attribute : value containing the information listed above.
func (a *API) EventInfo(ctx context.Context) ([]string, error) {
	all, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	var values []string
	values = append(values, fmt.Sprintf("Event: %s", a.Store.GetEvent()))
	values = append(values, fmt.Sprintf("Database: %s", a.Store.GetDatabase().Name()))
	values = append(values, fmt.Sprintf("Season: %s", match.DefaultSeason))
	values = append(values, fmt.Sprintf("Entries scouted: %d", len(all)))
	values = append(values, fmt.Sprintf("Teams scouted: %d", len(logic.CollateByTeam(all))))
	return values, nil
}

// endregion

// region Favorites

// AddFavorite marks a team as a favorite
func (a *API) AddFavorite(ctx context.Context, team int) error {
	if err := validTeam(team); err != nil {
		return err
	}
	return a.Store.AddFavoriteTeam(ctx, team)
}

// RemoveFavorite removes a team from the favorites
func (a *API) RemoveFavorite(ctx context.Context, team int) error {
	if err := validTeam(team); err != nil {
		return err
	}
	return a.Store.RemoveFavoriteTeam(ctx, team)
}

// GetFavorites returns the favorite teams in the order they were added
func (a *API) GetFavorites(ctx context.Context) ([]int, error) {
	return a.Store.GetFavoriteTeams(ctx)
}

// FavoritesSummary generates a response string listing the favorite teams with their average totals
func (a *API) FavoritesSummary(ctx context.Context) (string, error) {
	favorites, err := a.Store.GetFavoriteTeams(ctx)
	if err != nil {
		return "", err
	}
	if len(favorites) == 0 {
		return "No favorite teams yet, add one with $favorite add <team>", nil
	}

	all, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return "", err
	}
	collated := logic.CollateByTeam(all)

	var response strings.Builder
	response.WriteString("Favorite teams:\n")
	for _, team := range favorites {
		entries := collated[team]
		if len(entries) == 0 {
			response.WriteString(fmt.Sprintf("- %d: not scouted yet\n", team))
			continue
		}
		response.WriteString(fmt.Sprintf("- %d: %.2f over %d matches\n", team, logic.AverageTotal(entries), len(entries)))
	}
	return response.String(), nil
}

// endregion

// region Search

// SearchRemarks finds entries whose remarks fuzzy match the query, closest first
func (a *API) SearchRemarks(ctx context.Context, query string) ([]logic.RemarkMatch, error) {
	all, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	return logic.SearchRemarks(all, query), nil
}

// SearchSummary generates a response string listing the entries whose remarks match the query
func (a *API) SearchSummary(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New("search text cannot be empty")
	}
	results, err := a.SearchRemarks(ctx, query)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return fmt.Sprintf("No remarks matched %q", query), nil
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Remarks matching %q:\n", query))
	for _, result := range results {
		response.WriteString(fmt.Sprintf("- %s, team %d: %s\n", result.Entry.MatchCode(), result.Entry.TeamNumber(), result.Entry.Remarks()))
	}
	return response.String(), nil
}

// endregion

// region Import / Export

// ImportEntries reads entries with the named import strategy and stores all of them. Nothing is stored if any entry in
// the file is invalid
func (a *API) ImportEntries(ctx context.Context, strategyName string, data []byte) (ImportResult, error) {
	strategy, err := external.GetImportStrategy(strategyName)
	if err != nil {
		return ImportResult{}, err
	}
	entries, err := external.Import(strategy.Name, data)
	if err != nil {
		return ImportResult{}, err
	}
	if err := a.Store.StoreEntries(ctx, entries); err != nil {
		return ImportResult{}, err
	}

	log.WithFields(log.Fields{
		"strategy": strategy.Name,
		"event":    a.Store.GetEvent(),
		"entries":  len(entries),
	}).Info("imported entries")
	return ImportResult{Strategy: strategy.Name, Imported: len(entries)}, nil
}

// ImportEntriesFromURL downloads an export file and imports it
func (a *API) ImportEntriesFromURL(ctx context.Context, strategyName string, url string) (ImportResult, error) {
	data, err := external.FetchFile(ctx, url)
	if err != nil {
		return ImportResult{}, err
	}
	return a.ImportEntries(ctx, strategyName, data)
}

// ExportEntries writes every entry at the event with the named export strategy
func (a *API) ExportEntries(ctx context.Context, strategyName string, fileName string) (external.ExportFile, error) {
	all, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return external.ExportFile{}, err
	}
	return external.Export(strategyName, fileName, all)
}

// ExportToSheet uploads the team overview to the configured Google Sheet
func (a *API) ExportToSheet(ctx context.Context) error {
	if a.Sheets == nil {
		return ErrSheetsNotConfigured
	}
	overviews, err := a.GetOverview(ctx)
	if err != nil {
		return err
	}
	if err := a.Sheets.UploadOverview(ctx, overviews); err != nil {
		return err
	}
	log.WithFields(log.Fields{"event": a.Store.GetEvent(), "teams": len(overviews)}).Info("uploaded overview to google sheets")
	return nil
}

// endregion
