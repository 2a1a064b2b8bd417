/* external.go
 * Contains the import and export strategies used to move match entries in and out of the bot, and the logic used to
 * fetch export files from a URL
 * Authors: Zachary Bower
 */

package external

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	"scouting-bot/api/match"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrMissingFileName = errors.New("filename missing")
	ErrFileTooLarge    = errors.New("file is too large")
)

// maxFetchBytes bounds the decompressed size of a fetched export file
var maxFetchBytes int64 = 10 << 20

var fetchClient = &http.Client{Timeout: 30 * time.Second}

var importStrategies = map[string]ImportStrategy{
	"original": {
		Name:        "original",
		DisplayName: "Original",
		Read:        match.ParseEntries,
	},
	"yaml": {
		Name:        "yaml",
		DisplayName: "YAML",
		Read:        readYAML,
	},
}

var exportStrategies = map[string]ExportStrategy{
	"original": {
		Name:        "original",
		DisplayName: "Original",
		ContentType: "application/json",
		Extension:   "json",
		Write:       writeJSON,
	},
	"yaml": {
		Name:        "yaml",
		DisplayName: "YAML",
		ContentType: "application/yaml",
		Extension:   "yaml",
		Write:       writeYAML,
	},
}

func writeJSON(entries []*match.Entry) ([]byte, error) {
	data, err := json.Marshal(match.Records(entries))
	if err != nil {
		return nil, fmt.Errorf("error encoding entries: %w", err)
	}
	return data, nil
}

func writeYAML(entries []*match.Entry) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(match.Records(entries)); err != nil {
		return nil, fmt.Errorf("error encoding entries: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("error encoding entries: %w", err)
	}
	return buf.Bytes(), nil
}

// readYAML decodes a YAML sequence of entries. Each document is decoded twice, once into a record and once into a
// map so missing fields can be backfilled
func readYAML(data []byte) ([]*match.Entry, error) {
	var records []match.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding entries: %w: %w", match.ErrMalformed, err)
	}
	var docs []map[string]any
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("error decoding entries: %w: %w", match.ErrMalformed, err)
	}
	for i := range records {
		match.Backfill(&records[i], match.MapPresence(docs[i]))
	}
	return match.NewEntries(records)
}

func strategyNames[T any](strategies map[string]T) []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveName finds the strategy a user meant. An exact (case-insensitive) match wins, otherwise the closest fuzzy
// match is used
func resolveName(input string, names []string) (string, error) {
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if cleaned == "" {
		return "", fmt.Errorf("%w: no strategy given, expected one of %s", ErrUnknownStrategy, strings.Join(names, ", "))
	}
	for _, name := range names {
		if name == cleaned {
			return name, nil
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(cleaned, names)
	if len(ranks) == 0 {
		return "", fmt.Errorf("%w %q, expected one of %s", ErrUnknownStrategy, input, strings.Join(names, ", "))
	}
	sort.Sort(ranks)
	return ranks[0].Target, nil
}

// ImportStrategies returns the names of the available import strategies in alphabetical order
func ImportStrategies() []string {
	return strategyNames(importStrategies)
}

// ExportStrategies returns the names of the available export strategies in alphabetical order
func ExportStrategies() []string {
	return strategyNames(exportStrategies)
}

// GetImportStrategy returns the import strategy with the given name
// Preconditions: Receives a strategy name, which may be abbreviated (e.g. "yml")
// Postconditions: Returns the strategy, or an error wrapping ErrUnknownStrategy
func GetImportStrategy(name string) (ImportStrategy, error) {
	resolved, err := resolveName(name, ImportStrategies())
	if err != nil {
		return ImportStrategy{}, err
	}
	return importStrategies[resolved], nil
}

// GetExportStrategy returns the export strategy with the given name
func GetExportStrategy(name string) (ExportStrategy, error) {
	resolved, err := resolveName(name, ExportStrategies())
	if err != nil {
		return ExportStrategy{}, err
	}
	return exportStrategies[resolved], nil
}

// SanitizeFileName removes any number of trailing copies of the strategy's extension from a user supplied filename
func SanitizeFileName(fileName string, strategy ExportStrategy) string {
	extension := "." + strategy.Extension
	for strings.HasSuffix(strings.ToLower(fileName), extension) {
		fileName = fileName[:len(fileName)-len(extension)]
	}
	return fileName
}

// Import reads entries from data using the named strategy
func Import(strategyName string, data []byte) ([]*match.Entry, error) {
	strategy, err := GetImportStrategy(strategyName)
	if err != nil {
		return nil, err
	}
	entries, err := strategy.Read(data)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s file: %w", strategy.DisplayName, err)
	}
	return entries, nil
}

// Export writes entries using the named strategy
// Preconditions: Receives a strategy name and a non-blank filename
// Postconditions: Returns the file with the strategy's extension appended exactly once, or an error if it occurs
func Export(strategyName string, fileName string, entries []*match.Entry) (ExportFile, error) {
	strategy, err := GetExportStrategy(strategyName)
	if err != nil {
		return ExportFile{}, err
	}
	if strings.TrimSpace(fileName) == "" {
		return ExportFile{}, ErrMissingFileName
	}

	contents, err := strategy.Write(entries)
	if err != nil {
		return ExportFile{}, fmt.Errorf("failed to export %s file: %w", strategy.DisplayName, err)
	}

	return ExportFile{
		FileName:    fmt.Sprintf("%s.%s", SanitizeFileName(fileName, strategy), strategy.Extension),
		ContentType: strategy.ContentType,
		Contents:    contents,
	}, nil
}

// FetchFile downloads an export file from a URL. The body is not parsed
// Preconditions: Receives a context bounding the request and a http or https URL
// Postconditions: Returns the (decompressed) body, or an error if the request fails, does not return 200 or the body
// is larger than maxFetchBytes
func FetchFile(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("User-Agent", "ScoutingBot/1.0")
	request.Header.Set("Accept-Encoding", "gzip")

	response, err := fetchClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch file, status code: %d", response.StatusCode)
	}

	var reader io.Reader = response.Body
	if response.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	body, err := io.ReadAll(io.LimitReader(reader, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > maxFetchBytes {
		return nil, fmt.Errorf("%w, the limit is %d bytes", ErrFileTooLarge, maxFetchBytes)
	}
	return body, nil
}
