/* rules.go
 * Contains the season rule sets. Each season is a fixed formula with its own constant table, selected once when an
 * entry is constructed. Only the Freight Frenzy (2021-22) season is implemented
 * Authors: Zachary Bower
 */

package match

// Season tags which rule set an entry was recorded under
type Season string

const (
	FreightFrenzy Season = "FREIGHT_FRENZY"

	// DefaultSeason is assumed for entries recorded before entries carried a season tag
	DefaultSeason = FreightFrenzy
)

// Limits are the largest counts a season accepts for a single team in a single match. A count equal to its limit is
// valid
type Limits struct {
	HubLevelFreight    int
	StorageUnitFreight int
	SharedHubFreight   int
	Ducks              int
	Penalties          int
}

// Freight Frenzy limits
const (
	MaxHubLevelFreight    = 40
	MaxStorageUnitFreight = 40
	MaxSharedHubFreight   = 40
	MaxDucks              = 10
	MaxPenalties          = 30
)

// Rules is a season rule set. The interface is sealed, new seasons are added in this package
type Rules interface {
	Season() Season
	Limits() Limits

	validate(auto AutonomousPerformance, teleOp TeleOpPerformance, endgame EndgamePerformance) error
	autoScore(auto AutonomousPerformance) int
	teleOpScore(auto AutonomousPerformance, teleOp TeleOpPerformance) int
	endgameScore(endgame EndgamePerformance) int
}

// RulesFor returns the rule set for a season tag. An empty tag selects DefaultSeason
func RulesFor(season Season) (Rules, error) {
	switch season {
	case FreightFrenzy, "":
		return freightFrenzy{}, nil
	}
	return nil, newValidationError("", ErrInvalidEnum, "unsupported season %q", season)
}

// region Freight Frenzy

const (
	ffAutoDuckPoints           = 10
	ffAutoPreLoadPoints        = 10
	ffAutoPreLoadWithTsePoints = 20
	ffAutoStorageUnitPoints    = 2
	ffAutoHubPoints            = 6

	ffTeleOpStorageUnitPoints = 1
	ffTeleOpSharedHubPoints   = 4

	ffEndgameDuckPoints         = 6
	ffEndgameHubBalancedPoints  = 10
	ffEndgameSharedTippedPoints = 20
	ffEndgameTseCappedPoints    = 15

	ffMinorPenaltyPoints = 10
	ffMajorPenaltyPoints = 20
)

// ffHubLevelPoints is the teleop value of freight on each alliance hub level
var ffHubLevelPoints = [3]int{2, 4, 6}

var autoParkPoints = map[ParkArea]int{
	NotParked:               0,
	PartiallyInStorageUnit:  3,
	CompletelyInStorageUnit: 6,
	PartiallyInWarehouse:    5,
	CompletelyInWarehouse:   10,
}

var endgameParkPoints = map[ParkingResult]int{
	EndgameNotParked:    0,
	EndgamePartiallyIn:  3,
	EndgameCompletelyIn: 6,
}

type freightFrenzy struct{}

func (freightFrenzy) Season() Season {
	return FreightFrenzy
}

func (freightFrenzy) Limits() Limits {
	return Limits{
		HubLevelFreight:    MaxHubLevelFreight,
		StorageUnitFreight: MaxStorageUnitFreight,
		SharedHubFreight:   MaxSharedHubFreight,
		Ducks:              MaxDucks,
		Penalties:          MaxPenalties,
	}
}

func (f freightFrenzy) validate(auto AutonomousPerformance, teleOp TeleOpPerformance, endgame EndgamePerformance) error {
	limits := f.Limits()
	if err := validateAutonomous(auto, limits); err != nil {
		return err
	}
	if err := validateTeleOp(teleOp, limits); err != nil {
		return err
	}
	return validateEndgame(endgame, limits)
}

// endregion
