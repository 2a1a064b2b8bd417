/* match_code.go
 * Contains the match code grammar, the storage key format and the ordering used when listing matches
 * Authors: Zachary Bower
 */

package match

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var matchCodePattern = regexp.MustCompile(`^(Q[1-9][0-9]*|F[1-9][0-9]*|SF[12]-[1-9][0-9]*)$`)

// IsValidMatchCode reports whether code is a qualification (Q12), final (F1) or semifinal (SF2-1) code.
// Codes are case sensitive and may not contain whitespace
func IsValidMatchCode(code string) bool {
	return matchCodePattern.MatchString(code)
}

// EntryKey returns the storage key for a team's entry in a match
func EntryKey(matchCode string, teamNumber int) string {
	return fmt.Sprintf("%s:%d", matchCode, teamNumber)
}

// ParseEntryKey splits a storage key into its match code and team number
// Preconditions: Receives a key in the form "{matchCode}:{teamNumber}"
// Postconditions: Returns the match code and team number, or an error if either part is invalid
func ParseEntryKey(key string) (string, int, error) {
	code, team, found := strings.Cut(key, ":")
	if !found {
		return "", 0, newValidationError("", ErrInvalidTeamNumber, "entry key %q is missing a team number", key)
	}
	if !IsValidMatchCode(code) {
		return "", 0, fmt.Errorf("entry key %q: %w", key, newValidationError("", ErrInvalidMatchCode, "match code %q is invalid", code))
	}
	teamNumber, err := ParseTeamNumber(team)
	if err != nil {
		return "", 0, fmt.Errorf("entry key %q: %w", key, err)
	}
	return code, teamNumber, nil
}

// ParseTeamNumber converts user input into a team number
func ParseTeamNumber(s string) (int, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, newValidationError("", ErrInvalidTeamNumber, "team number %q is invalid", s)
	}
	if err := validateTeamNumber(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func validateTeamNumber(n float64) error {
	if math.IsNaN(n) {
		return newValidationError("", ErrInvalidTeamNumber, "invalid team number")
	}
	if n < 1 || n > math.MaxInt32 || n != math.Trunc(n) || math.IsInf(n, 0) {
		return newValidationError("", ErrInvalidTeamNumber, "team number %s is invalid", strconv.FormatFloat(n, 'f', -1, 64))
	}
	return nil
}

// matchStage orders the kinds of match: qualifications first, then semifinals, then finals
func matchStage(code string) int {
	switch {
	case strings.HasPrefix(code, "Q"):
		return 0
	case strings.HasPrefix(code, "SF"):
		return 1
	case strings.HasPrefix(code, "F"):
		return 2
	}
	return 3
}

// matchNumbers returns the numeric parts of a code, e.g. SF2-3 -> [2 3]
func matchNumbers(code string) []int {
	trimmed := strings.TrimLeft(code, "QSF")
	var numbers []int
	for _, part := range strings.Split(trimmed, "-") {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// CompareMatchCodes orders match codes the way they are played: Q1 < Q2 < Q10 < SF1-1 < SF1-2 < SF2-1 < F1.
// Returns a negative number when a comes first, positive when b comes first and 0 when they are equal
func CompareMatchCodes(a, b string) int {
	if stageA, stageB := matchStage(a), matchStage(b); stageA != stageB {
		return stageA - stageB
	}
	numbersA, numbersB := matchNumbers(a), matchNumbers(b)
	for i := 0; i < len(numbersA) && i < len(numbersB); i++ {
		if numbersA[i] != numbersB[i] {
			return numbersA[i] - numbersB[i]
		}
	}
	if len(numbersA) != len(numbersB) {
		return len(numbersA) - len(numbersB)
	}
	return strings.Compare(a, b)
}
