package main

import (
	"time"

	"lg/sahha-go-api/nutrition"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.ParseInLocation(`"2006-01-02"`, string(b), time.Local)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

/* ─── Responses ──────────────────────────────────────────────────────── */

// profileResponse is the shape for GET/PUT /api/profile: the stored profile
// plus the energy numbers derived from it.
type profileResponse struct {
	Profile        nutrition.UserProfile  `json:"profile"`
	BMR            int                    `json:"bmr"`
	TDEE           int                    `json:"tdee"`
	TargetCalories int                    `json:"target_calories"`
	Macros         nutrition.MacroTargets `json:"macros"`
}

// dailySummary is the response shape for GET /api/daily. Targets fall back to
// defaultTargetCalories when no profile has been saved (HasProfile=false).
type dailySummary struct {
	Date           DateOnly               `json:"date"`
	HasProfile     bool                   `json:"has_profile"`
	TargetCalories int                    `json:"target_calories"`
	TargetMacros   nutrition.MacroTargets `json:"target_macros"`
	Consumed       nutrition.Totals       `json:"consumed"`
	CaloriesLeft   int                    `json:"calories_left"`
	Progress       int                    `json:"progress"`
	Logs           []nutrition.MealLog    `json:"logs"`
}

// analyzeResponse is the response for POST /api/analyze. Food is the estimate
// converted to per-100g densities, ready to post back as an ad hoc food.
type analyzeResponse struct {
	Estimate nutrition.Estimate `json:"estimate"`
	Food     nutrition.FoodItem `json:"food"`
	Cached   bool               `json:"cached"`
}

/* ─── Requests ───────────────────────────────────────────────────────── */

// createMealLogRequest is the request body for POST /api/meal-logs. Exactly one
// of FoodID (seed table), Food (ad hoc entry) or Estimate (photo analysis) must
// be set. Quantity defaults to the estimate's weight for estimates; MealType
// defaults to lunch.
type createMealLogRequest struct {
	FoodID   string              `json:"food_id"`
	Food     *nutrition.FoodItem `json:"food"`
	Estimate *nutrition.Estimate `json:"estimate"`
	Quantity *float64            `json:"quantity"`
	MealType nutrition.MealType  `json:"meal_type"`
}

// analyzeRequest is the JSON form of POST /api/analyze: a data URL
// ("data:image/jpeg;base64,...") or bare base64 assumed to be JPEG.
type analyzeRequest struct {
	Image string `json:"image"`
}
