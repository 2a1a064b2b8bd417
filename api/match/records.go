/* records.go
 * Contains Record, the flat serialized shape of a match entry, and the parse -> backfill -> validate pipeline used to
 * load entries written by older versions that did not have every field
 * Authors: Zachary Bower
 */

package match

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by errors for input that could not be decoded at all, as opposed to decoded entries that
// failed validation
var ErrMalformed = errors.New("malformed input")

// Record is the serialized form of an Entry. TeamNumber is a float so that invalid input (NaN, 1.5) reaches
// validation instead of failing to decode
type Record struct {
	MatchCode  string                `json:"matchCode" bson:"matchCode" yaml:"matchCode"`
	TeamNumber float64               `json:"teamNumber" bson:"teamNumber" yaml:"teamNumber"`
	Alliance   Alliance              `json:"alliance" bson:"alliance" yaml:"alliance"`
	Auto       AutonomousPerformance `json:"auto" bson:"auto" yaml:"auto"`
	TeleOp     TeleOpPerformance     `json:"teleOp" bson:"teleOp" yaml:"teleOp"`
	Endgame    EndgamePerformance    `json:"endgame" bson:"endgame" yaml:"endgame"`
	Disconnect DisconnectStatus      `json:"disconnect" bson:"disconnect" yaml:"disconnect"`
	Remarks    string                `json:"remarks,omitempty" bson:"remarks,omitempty" yaml:"remarks,omitempty"`
	Season     Season                `json:"season,omitempty" bson:"season,omitempty" yaml:"season,omitempty"`
}

// Record returns the serialized form of the entry
func (e *Entry) Record() Record {
	return Record{
		MatchCode:  e.matchCode,
		TeamNumber: float64(e.teamNumber),
		Alliance:   e.alliance,
		Auto:       e.auto,
		TeleOp:     e.teleOp,
		Endgame:    e.endgame,
		Disconnect: e.disconnect,
		Remarks:    e.remarks,
		Season:     e.Season(),
	}
}

func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Record())
}

// Backfill fills in fields that older records did not have. present reports whether a field existed in the source
// document, given its path (e.g. "endgame", "duckDeliveryAttempted")
// Postconditions: Missing disconnect becomes NONE, missing season becomes DefaultSeason and a missing duck attempt
// flag is inferred from the number of ducks delivered
func Backfill(r *Record, present func(path ...string) bool) {
	if !present("disconnect") {
		r.Disconnect = NoDisconnect
	}
	if !present("season") {
		r.Season = DefaultSeason
	}
	if !present("endgame", "duckDeliveryAttempted") {
		r.Endgame.DuckDeliveryAttempted = r.Endgame.DucksDelivered > 0
	}
}

// lookup returns the value at path in a decoded JSON or YAML object
func lookup(doc map[string]any, path ...string) (any, bool) {
	var value any = doc
	for _, key := range path {
		current, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		if value, ok = current[key]; !ok {
			return nil, false
		}
	}
	return value, true
}

// MapPresence returns a presence probe over a decoded JSON or YAML object
func MapPresence(doc map[string]any) func(path ...string) bool {
	return func(path ...string) bool {
		_, ok := lookup(doc, path...)
		return ok
	}
}

// tuplePaths are the fixed length arrays of a serialized entry. encoding/json drops extra elements and zero fills
// missing ones, so their lengths are checked before decoding is trusted
var tuplePaths = [][]string{
	{"auto", "freightScoredPerLevel"},
	{"auto", "warningsPenalties"},
	{"teleOp", "freightScoredPerLevel"},
	{"teleOp", "warningsPenalties"},
	{"endgame", "warningsPenalties"},
}

func checkTupleLengths(doc map[string]any) error {
	for _, path := range tuplePaths {
		value, ok := lookup(doc, path...)
		if !ok {
			continue
		}
		if elements, isArray := value.([]any); isArray && len(elements) != 3 {
			return fmt.Errorf("%w: %s has %d elements, expected 3", ErrMalformed, strings.Join(path, "."), len(elements))
		}
	}
	return nil
}

func parseRawEntry(raw json.RawMessage) (*Entry, error) {
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("error decoding entry: %w: %w", ErrMalformed, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding entry: %w: %w", ErrMalformed, err)
	}
	if err := checkTupleLengths(doc); err != nil {
		return nil, fmt.Errorf("error decoding entry: %w", err)
	}
	Backfill(&record, MapPresence(doc))
	return NewEntry(record)
}

// ParseEntry decodes a single JSON entry, backfills missing fields and validates it
func ParseEntry(data []byte) (*Entry, error) {
	return parseRawEntry(data)
}

// ParseEntries decodes a JSON array of entries, as written by an export
// Preconditions: Receives a JSON array of serialized entries
// Postconditions: Returns every entry in order, or an error naming the index of the first entry that could not be
// loaded
func ParseEntries(data []byte) ([]*Entry, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("error decoding entries: %w: %w", ErrMalformed, err)
	}
	entries := make([]*Entry, 0, len(raws))
	for i, raw := range raws {
		entry, err := parseRawEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Records converts entries to their serialized form
func Records(entries []*Entry) []Record {
	records := make([]Record, len(entries))
	for i, entry := range entries {
		records[i] = entry.Record()
	}
	return records
}

// NewEntries builds entries from records, stopping at the first invalid record
func NewEntries(records []Record) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(records))
	for i, record := range records {
		entry, err := NewEntry(record)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
