/* entry.go
 * Contains Entry, one team's scouted performance in one match. An Entry can only be created through NewEntry, which
 * validates the telemetry, so every Entry that exists is valid and can be scored
 * Authors: Zachary Bower
 */

package match

// Entry is a validated, immutable match entry. Getters return copies
type Entry struct {
	matchCode  string
	teamNumber int
	alliance   Alliance
	auto       AutonomousPerformance
	teleOp     TeleOpPerformance
	endgame    EndgamePerformance
	disconnect DisconnectStatus
	remarks    string
	rules      Rules
}

// NewEntry validates a record and builds an Entry from it
// Preconditions: Receives a record, usually built by a UI or decoded by ParseEntry. An empty season selects
// DefaultSeason
// Postconditions: Returns the entry, or a *ValidationError describing the first problem found. The record is not
// modified
func NewEntry(r Record) (*Entry, error) {
	if err := validateMetadata(r); err != nil {
		return nil, err
	}
	rules, err := RulesFor(r.Season)
	if err != nil {
		return nil, err
	}
	if err := rules.validate(r.Auto, r.TeleOp, r.Endgame); err != nil {
		return nil, err
	}

	entry := &Entry{
		matchCode:  r.MatchCode,
		teamNumber: int(r.TeamNumber),
		alliance:   r.Alliance,
		auto:       r.Auto,
		teleOp:     r.TeleOp,
		endgame:    r.Endgame,
		disconnect: r.Disconnect,
		remarks:    r.Remarks,
		rules:      rules,
	}

	if entry.disconnect == TotalDisconnect {
		if total := entry.TotalScore(); total != 0 {
			return nil, newValidationError("", ErrInconsistent, "team %d was totally disconnected but scored %d points",
				entry.teamNumber, total)
		}
	}
	return entry, nil
}

func (e *Entry) MatchCode() string {
	return e.matchCode
}

func (e *Entry) TeamNumber() int {
	return e.teamNumber
}

func (e *Entry) Alliance() Alliance {
	return e.alliance
}

func (e *Entry) Auto() AutonomousPerformance {
	return e.auto
}

func (e *Entry) TeleOp() TeleOpPerformance {
	return e.teleOp
}

func (e *Entry) Endgame() EndgamePerformance {
	return e.endgame
}

func (e *Entry) Disconnect() DisconnectStatus {
	return e.disconnect
}

func (e *Entry) Remarks() string {
	return e.remarks
}

func (e *Entry) Season() Season {
	return e.rules.Season()
}

// Key returns the storage key of the entry. Re-scouting a team in the same match replaces the entry under this key
func (e *Entry) Key() string {
	return EntryKey(e.matchCode, e.teamNumber)
}

// AutoScore returns the points scored during autonomous, after penalties
func (e *Entry) AutoScore() int {
	return e.rules.autoScore(e.auto)
}

// TeleOpScore returns the points scored during teleop, including the alliance hub freight left from autonomous
func (e *Entry) TeleOpScore() int {
	return e.rules.teleOpScore(e.auto, e.teleOp)
}

// EndgameScore returns the points scored during the endgame, after penalties
func (e *Entry) EndgameScore() int {
	return e.rules.endgameScore(e.endgame)
}

// TotalScore returns the sum of the three period scores
func (e *Entry) TotalScore() int {
	return e.AutoScore() + e.TeleOpScore() + e.EndgameScore()
}

// CombinedZoneScore returns the alliance hub points counted at the end of teleop
func (e *Entry) CombinedZoneScore() int {
	return combinedZoneScore(e.auto, e.teleOp)
}

// PenaltyPoints returns the points deducted in a period. An unknown period returns the total over all periods
func (e *Entry) PenaltyPoints(period Period) int {
	switch period {
	case Autonomous:
		return penaltyPoints(e.auto.WarningsPenalties)
	case TeleOp:
		return penaltyPoints(e.teleOp.WarningsPenalties)
	case Endgame:
		return penaltyPoints(e.endgame.WarningsPenalties)
	}
	return penaltyPoints(e.auto.WarningsPenalties) + penaltyPoints(e.teleOp.WarningsPenalties) +
		penaltyPoints(e.endgame.WarningsPenalties)
}
