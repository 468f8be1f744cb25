package entity

// Metas de la campaña de referidos. La primera desbloquea el premio
// intermedio, la segunda el kit de bienestar integral.
const (
	ReferralGoal         = 10
	ReferralUltimateGoal = 15
)

type ReferralTier string

const (
	TierInProgress  ReferralTier = "IN_PROGRESS"
	TierGoalMet     ReferralTier = "GOAL_MET"
	TierUltimateMet ReferralTier = "ULTIMATE_GOAL_MET"
)

// ReferralStatus se deriva del conteo en cada lectura, nunca se persiste.
type ReferralStatus struct {
	Count     int          `json:"count"`
	Tier      ReferralTier `json:"tier"`
	Remaining int          `json:"remaining"`
}

func ReferralProgress(count int) ReferralStatus {
	switch {
	case count >= ReferralUltimateGoal:
		return ReferralStatus{Count: count, Tier: TierUltimateMet, Remaining: 0}
	case count >= ReferralGoal:
		return ReferralStatus{Count: count, Tier: TierGoalMet, Remaining: ReferralUltimateGoal - count}
	default:
		return ReferralStatus{Count: count, Tier: TierInProgress, Remaining: ReferralGoal - count}
	}
}
