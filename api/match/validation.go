/* validation.go
 * Contains the validation errors returned when a match entry is constructed and the per period checks for the
 * Freight Frenzy season. Validation fails on the first problem found and never adjusts the input
 * Authors: Zachary Bower
 */

package match

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMatchCode  = errors.New("invalid match code")
	ErrInvalidTeamNumber = errors.New("invalid team number")
	ErrInvalidEnum       = errors.New("invalid enum value")
	ErrOutOfRange        = errors.New("value out of range")
	ErrInconsistent      = errors.New("inconsistent entry")
)

// ValidationError describes why a match entry was rejected. Period is empty when the problem is with the match
// metadata rather than a timed period. The wrapped sentinel can be checked with errors.Is
type ValidationError struct {
	Period Period
	Reason string
	err    error
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func newValidationError(period Period, sentinel error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Period: period,
		Reason: fmt.Sprintf(format, args...),
		err:    sentinel,
	}
}

// validateMetadata checks the fields shared by every season
func validateMetadata(r Record) error {
	if !IsValidMatchCode(r.MatchCode) {
		return newValidationError("", ErrInvalidMatchCode, "match code %q is invalid", r.MatchCode)
	}
	if err := validateTeamNumber(r.TeamNumber); err != nil {
		return err
	}
	if !validAlliance(r.Alliance) {
		return newValidationError("", ErrInvalidEnum, "unknown alliance %q", r.Alliance)
	}
	if !validDisconnect(r.Disconnect) {
		return newValidationError("", ErrInvalidEnum, "unknown disconnect status %q", r.Disconnect)
	}
	return nil
}

func inRange(value, limit int) bool {
	return value >= 0 && value <= limit
}

func validatePenalties(period Period, wp WarningsPenalties, limit int) error {
	for _, count := range wp {
		if !inRange(count, limit) {
			return newValidationError(period, ErrOutOfRange, "invalid amount of penalties during %s", period)
		}
	}
	return nil
}

func validateScoringResult(period Period, field string, r ScoringResult) error {
	if !validScoringResult(r) {
		return newValidationError(period, ErrInvalidEnum, "unknown %s %q during %s", field, r, period)
	}
	return nil
}

// validateAutonomous checks an autonomous record against the season limits
func validateAutonomous(a AutonomousPerformance, limits Limits) error {
	if err := validateScoringResult(Autonomous, "usedTse", a.UsedTse); err != nil {
		return err
	}
	if err := validateScoringResult(Autonomous, "deliveredPreLoaded", a.DeliveredPreLoaded); err != nil {
		return err
	}
	if err := validateScoringResult(Autonomous, "deliveredCarouselDuck", a.DeliveredCarouselDuck); err != nil {
		return err
	}
	if _, ok := autoParkPoints[a.Parked]; !ok {
		return newValidationError(Autonomous, ErrInvalidEnum, "unknown parked %q during %s", a.Parked, Autonomous)
	}

	for _, freight := range a.FreightScoredPerLevel {
		if !inRange(freight, limits.HubLevelFreight) {
			return newValidationError(Autonomous, ErrOutOfRange, "invalid amount of freight on the alliance hub during autonomous")
		}
	}
	if !inRange(a.FreightScoredInStorageUnit, limits.StorageUnitFreight) {
		return newValidationError(Autonomous, ErrOutOfRange, "invalid amount of freight in the storage unit during autonomous")
	}
	return validatePenalties(Autonomous, a.WarningsPenalties, limits.Penalties)
}

// validateTeleOp checks a teleop record against the season limits
func validateTeleOp(t TeleOpPerformance, limits Limits) error {
	valid := inRange(t.FreightScoredOnSharedHub, limits.SharedHubFreight) &&
		inRange(t.FreightScoredInStorageUnit, limits.StorageUnitFreight)
	for _, freight := range t.FreightScoredPerLevel {
		valid = valid && inRange(freight, limits.HubLevelFreight)
	}
	if !valid {
		return newValidationError(TeleOp, ErrOutOfRange, "invalid number of scored freight during teleop")
	}
	return validatePenalties(TeleOp, t.WarningsPenalties, limits.Penalties)
}

// validateEndgame checks an endgame record against the season limits. Ducks can only be delivered if an attempt was
// recorded
func validateEndgame(e EndgamePerformance, limits Limits) error {
	if !validHubState(e.AllianceHubTipped) {
		return newValidationError(Endgame, ErrInvalidEnum, "unknown allianceHubTipped %q during %s", e.AllianceHubTipped, Endgame)
	}
	if !validHubState(e.SharedHubTipped) {
		return newValidationError(Endgame, ErrInvalidEnum, "unknown sharedHubTipped %q during %s", e.SharedHubTipped, Endgame)
	}
	if _, ok := endgameParkPoints[e.Parked]; !ok {
		return newValidationError(Endgame, ErrInvalidEnum, "unknown parked %q during %s", e.Parked, Endgame)
	}
	if err := validateScoringResult(Endgame, "tseScored", e.TseScored); err != nil {
		return err
	}

	if e.DuckDeliveryAttempted {
		if !inRange(e.DucksDelivered, limits.Ducks) {
			return newValidationError(Endgame, ErrOutOfRange, "invalid number of ducks delivered during endgame")
		}
	} else if e.DucksDelivered != 0 {
		if e.DucksDelivered < 0 {
			return newValidationError(Endgame, ErrOutOfRange, "invalid number of ducks delivered during endgame")
		}
		return newValidationError(Endgame, ErrInconsistent, "cannot deliver ducks if not attempted during endgame")
	}
	return validatePenalties(Endgame, e.WarningsPenalties, limits.Penalties)
}
