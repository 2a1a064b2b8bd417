/* models.go
 * This file contains the models used by the external package when reading and writing entries in external formats
 * Authors: Zachary Bower
 */

package external

import "scouting-bot/api/match"

// ImportStrategy reads entries from a file written in a particular format
type ImportStrategy struct {
	Name        string
	DisplayName string
	Read        func(data []byte) ([]*match.Entry, error)
}

// ExportStrategy writes entries to a file in a particular format
type ExportStrategy struct {
	Name        string
	DisplayName string
	ContentType string
	Extension   string
	Write       func(entries []*match.Entry) ([]byte, error)
}

// ExportFile is the output of an export, ready to be written to disk or sent as a download
type ExportFile struct {
	FileName    string
	ContentType string
	Contents    []byte
}
