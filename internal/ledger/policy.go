package ledger

import "github.com/vasanthkv/flowmate/internal/model"

// ActivityKind names an earning occasion in the fixed rate table.
type ActivityKind string

const (
	ActivityTaskComplete    ActivityKind = "task_complete"
	ActivityBigThreeBonus   ActivityKind = "big_three_bonus"
	ActivityFocusShort      ActivityKind = "focus_short"
	ActivityFocusLong       ActivityKind = "focus_long"
	ActivityStreakMilestone ActivityKind = "streak_milestone"
	ActivityWeeklyGoal      ActivityKind = "weekly_goal"
	ActivityTrophyMilestone ActivityKind = "trophy_milestone"
	ActivityGameComplete    ActivityKind = "game_complete"
	ActivityPetMilestone    ActivityKind = "pet_milestone"
)

func (k ActivityKind) IsValid() bool {
	_, ok := earningRates[k]
	return ok
}

// earningRates is a policy table, not a formula. Values are tuned for
// reward balance; change them deliberately, never derive them.
var earningRates = map[ActivityKind]model.CurrencyAmount{
	ActivityTaskComplete:    {Coins: 10},
	ActivityBigThreeBonus:   {Coins: 25, Gems: 1},
	ActivityFocusShort:      {Coins: 15},
	ActivityFocusLong:       {Coins: 30, Gems: 1},
	ActivityStreakMilestone: {Coins: 50, Gems: 2},
	ActivityWeeklyGoal:      {Coins: 75, Gems: 3},
	ActivityTrophyMilestone: {Coins: 40, Gems: 2},
	ActivityGameComplete:    {Coins: 20},
	ActivityPetMilestone:    {Coins: 30, Gems: 1},
}

// FocusLongMinutes is the session length at which a focus session pays
// the long rate.
const FocusLongMinutes = 25

// tierMilestones marks cumulative trophy counts that mint an upgraded
// trophy. Checked top down; counts between milestones fall through to
// the duration rules.
var tierMilestones = []struct {
	Count int
	Tier  model.TrophyTier
}{
	{Count: 50, Tier: model.TierDiamond},
	{Count: 25, Tier: model.TierGold},
	{Count: 10, Tier: model.TierSilver},
}

const (
	goldSessionMinutes   = 90
	silverSessionMinutes = 45
)

// TierFor picks the trophy tier for the cumulative award count
// (including this award) and the session duration in minutes.
func TierFor(cumulative, durationMinutes int) model.TrophyTier {
	for _, m := range tierMilestones {
		if cumulative == m.Count {
			return m.Tier
		}
	}
	if cumulative > 0 && cumulative%50 == 0 {
		return model.TierDiamond
	}
	if durationMinutes >= goldSessionMinutes {
		return model.TierGold
	}
	if durationMinutes >= silverSessionMinutes {
		return model.TierSilver
	}
	return model.TierBasic
}

var tierMessages = map[model.TrophyTier]string{
	model.TierBasic:   "Trophy earned! Keep the momentum going.",
	model.TierSilver:  "Silver trophy! That was a solid stretch of focus.",
	model.TierGold:    "Gold trophy! Outstanding session.",
	model.TierDiamond: "Diamond trophy! A milestone worth celebrating.",
}
