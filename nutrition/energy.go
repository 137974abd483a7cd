package nutrition

import "math"

// Goal deltas are fixed kcal offsets from TDEE, not ratios.
const (
	loseDeltaKcal = -500
	gainDeltaKcal = 500
)

// Macro split of the calorie budget and energy density per gram.
const (
	proteinShare = 0.30
	carbsShare   = 0.40
	fatShare     = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// BMR computes basal metabolic rate via Mifflin-St Jeor. There is no bounds
// checking; callers validate the profile first.
func BMR(p UserProfile) float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == Male {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales BMR by the activity level multiplier.
func TDEE(p UserProfile) float64 {
	return BMR(p) * p.ActivityLevel.Multiplier()
}

// TargetCalories returns the goal-adjusted daily calorie target. The profile is
// validated first so a bad activity level or goal fails instead of producing a
// plausible-looking number. The result is not clamped and can be negative.
func TargetCalories(p UserProfile) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	tdee := TDEE(p)
	switch p.Goal {
	case LoseWeight:
		tdee += loseDeltaKcal
	case GainWeight:
		tdee += gainDeltaKcal
	}
	return int(math.Round(tdee)), nil
}

// Macros splits a calorie target 30/40/30 into protein/carb/fat grams. Each
// value is rounded on its own; the grams are not rebalanced to add back up to
// the target.
func Macros(targetCalories int) MacroTargets {
	t := float64(targetCalories)
	return MacroTargets{
		Protein: int(math.Round(t * proteinShare / kcalPerGramProtein)),
		Carbs:   int(math.Round(t * carbsShare / kcalPerGramCarbs)),
		Fat:     int(math.Round(t * fatShare / kcalPerGramFat)),
	}
}
