/* sheets.go
 * Contains the Google Sheets client used to publish the team overview table to a shared spreadsheet
 * Authors: Zachary Bower
 */

package external

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"scouting-bot/api/logic"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

var overviewHeaders = []interface{}{
	"Team", "Matches",
	"Auto Duck Reliability", "Pre-Load Reliability", "Auto Hub Freight", "Auto Park", "Auto Total", "Auto Penalties",
	"TeleOp Hub Freight", "Shared Hub Freight", "Storage Unit Freight", "TeleOp Total", "TeleOp Penalties",
	"Endgame Ducks", "TSE Cap Rate", "Balance Rate", "Endgame Park", "Endgame Total", "Endgame Penalties",
	"Average Contribution", "Penalties",
}

// SheetsClient handles Google Sheets operations
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsClient creates a new Google Sheets client using service account credentials
func NewSheetsClient(ctx context.Context, credentialsJSON []byte, sheetURL, sheetName string) (*SheetsClient, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return newSheetsClient(srv, sheetURL, sheetName)
}

func newSheetsClient(srv *sheets.Service, sheetURL, sheetName string) (*SheetsClient, error) {
	spreadsheetID, err := ExtractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}
	if sheetName == "" {
		sheetName = "Overview"
	}

	return &SheetsClient{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// ExtractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL
func ExtractSpreadsheetID(url string) (string, error) {
	matches := spreadsheetIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", fmt.Errorf("could not extract spreadsheet ID from URL: %s", url)
	}
	return matches[1], nil
}

// OverviewRows converts team overviews into sheet rows, starting with a header row
func OverviewRows(overviews []logic.TeamOverview) [][]interface{} {
	rows := make([][]interface{}, 0, len(overviews)+1)
	rows = append(rows, overviewHeaders)
	for _, o := range overviews {
		rows = append(rows, []interface{}{
			o.TeamNumber, o.Matches,
			o.AutoDuckReliability, o.PreLoadReliability, o.AutoHubFreightAvg, o.AutoParkAvg, o.AutoTotalAvg, o.AutoPenaltiesAvg,
			o.TeleOpHubFreightAvg, o.SharedHubFreightAvg, o.StorageUnitFreightAvg, o.TeleOpTotalAvg, o.TeleOpPenaltiesAvg,
			o.EndgameDucksAvg, o.TseCapRate, o.AllianceHubBalanceRate, o.EndgameParkAvg, o.EndgameTotalAvg, o.EndgamePenaltiesAvg,
			o.AverageContribution, o.PenaltiesAvg,
		})
	}
	return rows
}

// UploadOverview replaces the contents of the sheet with the team overview table
func (c *SheetsClient) UploadOverview(ctx context.Context, overviews []logic.TeamOverview) error {
	// Clear existing data in the sheet first
	clearRange := fmt.Sprintf("%s!A:ZZ", c.sheetName)
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	writeRange := fmt.Sprintf("%s!A1", c.sheetName)
	valueRange := &sheets.ValueRange{
		Values: OverviewRows(overviews),
	}

	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write to sheet: %w", err)
	}

	return nil
}
