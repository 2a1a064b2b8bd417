/* scoring.go
 * Contains the Freight Frenzy scoring formulas. Scores are always computed from the recorded telemetry and are
 * never stored
 * Authors: Zachary Bower
 */

package match

import "scouting-bot/api/stats"

// penaltyPoints returns the points deducted for a period. Warnings do not cost points
func penaltyPoints(wp WarningsPenalties) int {
	return ffMinorPenaltyPoints*wp.Minor() + ffMajorPenaltyPoints*wp.Major()
}

// combinedZoneScore scores the alliance shipping hub at the end of teleop. Freight placed during autonomous is still
// on the hub, so it is counted again at the teleop level values
func combinedZoneScore(auto AutonomousPerformance, teleOp TeleOpPerformance) int {
	score := 0
	for level, points := range ffHubLevelPoints {
		score += (auto.FreightScoredPerLevel[level] + teleOp.FreightScoredPerLevel[level]) * points
	}
	return score
}

func (freightFrenzy) autoScore(auto AutonomousPerformance) int {
	score := 0
	if auto.DeliveredCarouselDuck == Scored {
		score += ffAutoDuckPoints
	}
	if auto.DeliveredPreLoaded == Scored {
		if auto.UsedTse == Scored {
			score += ffAutoPreLoadWithTsePoints
		} else {
			score += ffAutoPreLoadPoints
		}
	}
	score += auto.FreightScoredInStorageUnit * ffAutoStorageUnitPoints
	score += stats.Sum(auto.FreightScoredPerLevel[:]) * ffAutoHubPoints
	score += autoParkPoints[auto.Parked]
	return score - penaltyPoints(auto.WarningsPenalties)
}

func (freightFrenzy) teleOpScore(auto AutonomousPerformance, teleOp TeleOpPerformance) int {
	score := teleOp.FreightScoredInStorageUnit * ffTeleOpStorageUnitPoints
	score += teleOp.FreightScoredOnSharedHub * ffTeleOpSharedHubPoints
	score += combinedZoneScore(auto, teleOp)
	return score - penaltyPoints(teleOp.WarningsPenalties)
}

func (freightFrenzy) endgameScore(endgame EndgamePerformance) int {
	score := 0
	if endgame.DuckDeliveryAttempted {
		score += endgame.DucksDelivered * ffEndgameDuckPoints
	}
	if endgame.AllianceHubTipped == Balanced {
		score += ffEndgameHubBalancedPoints
	}
	if endgame.SharedHubTipped == Tipped {
		score += ffEndgameSharedTippedPoints
	}
	score += endgameParkPoints[endgame.Parked]
	if endgame.TseScored == Scored {
		score += ffEndgameTseCappedPoints
	}
	return score - penaltyPoints(endgame.WarningsPenalties)
}
