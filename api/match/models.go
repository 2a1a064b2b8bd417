/* models.go
 * Contains the enums and period performance records that make up a match entry for the Freight Frenzy season.
 * All enums are string valued so that stored documents (JSON and BSON) are readable without a lookup table.
 * Authors: Zachary Bower
 */

package match

// Alliance is the side a team played on in a match
type Alliance string

const (
	AllianceRed  Alliance = "RED"
	AllianceBlue Alliance = "BLUE"
)

// ScoringResult is the outcome of a scripted task. DidNotTry and Failed both score nothing but are kept apart so that
// reliability statistics only count real attempts
type ScoringResult string

const (
	Scored    ScoringResult = "SCORED"
	Failed    ScoringResult = "FAILED"
	DidNotTry ScoringResult = "DID_NOT_TRY"
)

// DisconnectStatus records whether a robot lost connection during the match
type DisconnectStatus string

const (
	NoDisconnect      DisconnectStatus = "NONE"
	PartialDisconnect DisconnectStatus = "PARTIAL"
	TotalDisconnect   DisconnectStatus = "TOTAL"
)

// ParkArea is where a robot finished the autonomous period
type ParkArea string

const (
	NotParked               ParkArea = "NOT_PARKED"
	PartiallyInStorageUnit  ParkArea = "PARTIALLY_IN_STORAGE_UNIT"
	CompletelyInStorageUnit ParkArea = "COMPLETELY_IN_STORAGE_UNIT"
	PartiallyInWarehouse    ParkArea = "PARTIALLY_IN_WAREHOUSE"
	CompletelyInWarehouse   ParkArea = "COMPLETELY_IN_WAREHOUSE"
)

// ParkingResult is where a robot finished the endgame, which is only scored inside the warehouse
type ParkingResult string

const (
	EndgameNotParked    ParkingResult = "NOT_PARKED"
	EndgamePartiallyIn  ParkingResult = "PARTIALLY_IN"
	EndgameCompletelyIn ParkingResult = "COMPLETELY_IN"
)

// HubState is the state of a shipping hub at the end of the match. Tipped means tipped towards the scouted team's
// alliance, TippedOpp towards the opposing alliance
type HubState string

const (
	Balanced  HubState = "BALANCED"
	Tipped    HubState = "TIPPED"
	TippedOpp HubState = "TIPPED_OPP"
)

// Period identifies one of the three timed phases of a match
type Period string

const (
	Autonomous Period = "autonomous"
	TeleOp     Period = "teleop"
	Endgame    Period = "endgame"
)

// WarningsPenalties holds [warnings, minor penalties, major penalties] for a period
type WarningsPenalties [3]int

func (w WarningsPenalties) Warnings() int {
	return w[0]
}

func (w WarningsPenalties) Minor() int {
	return w[1]
}

func (w WarningsPenalties) Major() int {
	return w[2]
}

// AutonomousPerformance is the telemetry recorded for the autonomous period
type AutonomousPerformance struct {
	UsedTse                    ScoringResult     `json:"usedTse" bson:"usedTse" yaml:"usedTse"`
	DeliveredPreLoaded         ScoringResult     `json:"deliveredPreLoaded" bson:"deliveredPreLoaded" yaml:"deliveredPreLoaded"`
	DeliveredCarouselDuck      ScoringResult     `json:"deliveredCarouselDuck" bson:"deliveredCarouselDuck" yaml:"deliveredCarouselDuck"`
	FreightScoredPerLevel      [3]int            `json:"freightScoredPerLevel" bson:"freightScoredPerLevel" yaml:"freightScoredPerLevel"`
	FreightScoredInStorageUnit int               `json:"freightScoredInStorageUnit" bson:"freightScoredInStorageUnit" yaml:"freightScoredInStorageUnit"`
	Parked                     ParkArea          `json:"parked" bson:"parked" yaml:"parked"`
	WarningsPenalties          WarningsPenalties `json:"warningsPenalties" bson:"warningsPenalties" yaml:"warningsPenalties"`
}

// TeleOpPerformance is the telemetry recorded for the driver controlled period. Freight counts only include freight
// placed during teleop, freight left on the hub from autonomous is added when scoring
type TeleOpPerformance struct {
	FreightScoredOnSharedHub   int               `json:"freightScoredOnSharedHub" bson:"freightScoredOnSharedHub" yaml:"freightScoredOnSharedHub"`
	FreightScoredInStorageUnit int               `json:"freightScoredInStorageUnit" bson:"freightScoredInStorageUnit" yaml:"freightScoredInStorageUnit"`
	FreightScoredPerLevel      [3]int            `json:"freightScoredPerLevel" bson:"freightScoredPerLevel" yaml:"freightScoredPerLevel"`
	WarningsPenalties          WarningsPenalties `json:"warningsPenalties" bson:"warningsPenalties" yaml:"warningsPenalties"`
}

// EndgamePerformance is the telemetry recorded for the endgame. DucksDelivered is only meaningful when
// DuckDeliveryAttempted is set
type EndgamePerformance struct {
	DuckDeliveryAttempted bool              `json:"duckDeliveryAttempted" bson:"duckDeliveryAttempted" yaml:"duckDeliveryAttempted"`
	DucksDelivered        int               `json:"ducksDelivered" bson:"ducksDelivered" yaml:"ducksDelivered"`
	AllianceHubTipped     HubState          `json:"allianceHubTipped" bson:"allianceHubTipped" yaml:"allianceHubTipped"`
	SharedHubTipped       HubState          `json:"sharedHubTipped" bson:"sharedHubTipped" yaml:"sharedHubTipped"`
	Parked                ParkingResult     `json:"parked" bson:"parked" yaml:"parked"`
	TseScored             ScoringResult     `json:"tseScored" bson:"tseScored" yaml:"tseScored"`
	WarningsPenalties     WarningsPenalties `json:"warningsPenalties" bson:"warningsPenalties" yaml:"warningsPenalties"`
}

// EmptyAutonomous returns an autonomous record where the team did nothing
func EmptyAutonomous() AutonomousPerformance {
	return AutonomousPerformance{
		UsedTse:               DidNotTry,
		DeliveredPreLoaded:    DidNotTry,
		DeliveredCarouselDuck: DidNotTry,
		Parked:                NotParked,
	}
}

// EmptyTeleOp returns a teleop record where the team did nothing
func EmptyTeleOp() TeleOpPerformance {
	return TeleOpPerformance{}
}

// EmptyEndgame returns an endgame record where the team did nothing
func EmptyEndgame() EndgamePerformance {
	return EndgamePerformance{
		AllianceHubTipped: Balanced,
		SharedHubTipped:   Balanced,
		Parked:            EndgameNotParked,
		TseScored:         DidNotTry,
	}
}

func validScoringResult(r ScoringResult) bool {
	return r == Scored || r == Failed || r == DidNotTry
}

func validAlliance(a Alliance) bool {
	return a == AllianceRed || a == AllianceBlue
}

func validDisconnect(d DisconnectStatus) bool {
	return d == NoDisconnect || d == PartialDisconnect || d == TotalDisconnect
}

func validHubState(h HubState) bool {
	return h == Balanced || h == Tipped || h == TippedOpp
}
