/* search.go
 * Contains the logic for searching scout remarks
 * Authors: Zachary Bower
 */

package logic

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"scouting-bot/api/match"
)

// RemarkMatch is an entry whose remarks matched a search, with the fuzzy match distance (lower is closer)
type RemarkMatch struct {
	Entry    *match.Entry
	Distance int
}

// SearchRemarks finds entries whose remarks contain the query, allowing for missing characters.
// Preconditions: Receives the entries to search and a query. Case is ignored
// Postconditions: Returns matching entries, closest match first. Entries without remarks are skipped
func SearchRemarks(entries []*match.Entry, query string) []RemarkMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	// RankFind works on strings, keep track of which entry each remark came from
	var remarks []string
	lookup := make(map[string][]*match.Entry)
	for _, entry := range entries {
		remark := strings.ToLower(entry.Remarks())
		if remark == "" {
			continue
		}
		if _, ok := lookup[remark]; !ok {
			remarks = append(remarks, remark)
		}
		lookup[remark] = append(lookup[remark], entry)
	}

	ranks := fuzzy.RankFind(query, remarks)
	sort.Stable(ranks)

	var results []RemarkMatch
	for _, rank := range ranks {
		for _, entry := range lookup[rank.Target] {
			results = append(results, RemarkMatch{Entry: entry, Distance: rank.Distance})
		}
	}
	return results
}
