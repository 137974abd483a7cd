// Package nutrition holds the pure calorie and macro math behind the tracker:
// energy targets from a biometric profile, macro splits, point-in-time meal log
// snapshots, and the per-day aggregation the dashboard compares against.
// Nothing in here does I/O, so every function is safe for concurrent use.
package nutrition

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrInvalidFood     = errors.New("invalid food")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidEstimate = errors.New("invalid estimate")
)

/* ─── Gender ─────────────────────────────────────────────────────────── */

// Gender selects the Mifflin-St Jeor offset term.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

/* ─── Activity level ─────────────────────────────────────────────────── */

// ActivityLevel is one of five fixed activity bands. Each variant carries its
// TDEE multiplier; the zero value is not a valid level.
type ActivityLevel int

const (
	Sedentary ActivityLevel = iota + 1
	Light
	Moderate
	Active
	VeryActive
)

// activityLevels is indexed by ActivityLevel. Legacy is the numeric-string tag
// older clients stored in place of the name.
var activityLevels = [...]struct {
	name       string
	legacy     string
	multiplier float64
}{
	Sedentary:  {"sedentary", "1.2", 1.2},
	Light:      {"light", "1.375", 1.375},
	Moderate:   {"moderate", "1.55", 1.55},
	Active:     {"active", "1.725", 1.725},
	VeryActive: {"very_active", "1.9", 1.9},
}

// ActivityLevels lists every valid level, least to most active.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}
}

func (a ActivityLevel) Valid() bool {
	return a >= Sedentary && a <= VeryActive
}

// Multiplier returns the TDEE multiplier for a. Invalid levels return 0.
func (a ActivityLevel) Multiplier() float64 {
	if !a.Valid() {
		return 0
	}
	return activityLevels[a].multiplier
}

func (a ActivityLevel) String() string {
	if !a.Valid() {
		return fmt.Sprintf("ActivityLevel(%d)", int(a))
	}
	return activityLevels[a].name
}

// ParseActivityLevel accepts a level name ("moderate") or its legacy numeric
// tag ("1.55"). Anything else is an error.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	for _, a := range ActivityLevels() {
		if s == activityLevels[a].name || s == activityLevels[a].legacy {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, s)
}

func (a ActivityLevel) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: activity level %d", ErrInvalidProfile, int(a))
	}
	return json.Marshal(a.String())
}

func (a *ActivityLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: activity level must be a string", ErrInvalidProfile)
	}
	level, err := ParseActivityLevel(s)
	if err != nil {
		return err
	}
	*a = level
	return nil
}

/* ─── Goal / meal type ───────────────────────────────────────────────── */

// Goal picks the fixed calorie delta applied to TDEE.
type Goal string

const (
	LoseWeight Goal = "lose"
	Maintain   Goal = "maintain"
	GainWeight Goal = "gain"
)

func (g Goal) Valid() bool {
	switch g {
	case LoseWeight, Maintain, GainWeight:
		return true
	}
	return false
}

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

/* ─── Records ────────────────────────────────────────────────────────── */

// UserProfile is the biometric snapshot every target computation reads.
// Weight is in kilograms, height in centimeters.
type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
}

// Validate reports the first field that would make the energy math meaningless.
// Name is display-only and may be empty.
func (p UserProfile) Validate() error {
	switch {
	case p.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	case !positive(p.Weight):
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidProfile)
	case !positive(p.Height):
		return fmt.Errorf("%w: height must be a positive number", ErrInvalidProfile)
	case !p.Gender.Valid():
		return fmt.Errorf("%w: gender must be one of: male, female", ErrInvalidProfile)
	case !p.ActivityLevel.Valid():
		return fmt.Errorf("%w: activityLevel must be one of: sedentary, light, moderate, active, very_active", ErrInvalidProfile)
	case !p.Goal.Valid():
		return fmt.Errorf("%w: goal must be one of: lose, maintain, gain", ErrInvalidProfile)
	}
	return nil
}

// FoodItem is a nutrient density definition per 100 grams.
type FoodItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	NameEn          string  `json:"nameEn"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
	ProteinPer100g  float64 `json:"proteinPer100g"`
	CarbsPer100g    float64 `json:"carbsPer100g"`
	FatPer100g      float64 `json:"fatPer100g"`
	Category        string  `json:"category,omitempty"`
}

func (f FoodItem) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidFood)
	}
	for _, v := range []float64{f.CaloriesPer100g, f.ProteinPer100g, f.CarbsPer100g, f.FatPer100g} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: per-100g values must be non-negative numbers", ErrInvalidFood)
		}
	}
	return nil
}

// MealLog is an immutable record of one consumption event. The nutrient fields
// are copied from the food at creation and never recomputed.
type MealLog struct {
	ID            string    `json:"id"`
	FoodID        string    `json:"foodId"`
	FoodName      string    `json:"foodName"`
	Quantity      float64   `json:"quantity"`
	TotalCalories int       `json:"totalCalories"`
	Protein       int       `json:"protein"`
	Carbs         int       `json:"carbs"`
	Fat           int       `json:"fat"`
	Timestamp     time.Time `json:"timestamp"`
	MealType      MealType  `json:"mealType"`
}

// Totals is a sum of consumed energy and macros.
type Totals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// MacroTargets are daily gram targets.
type MacroTargets struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Estimate is the structured output of the photo analysis model. Calories and
// macros are totals for EstimatedWeight grams, not per-100g densities.
type Estimate struct {
	FoodName        string  `json:"foodName"`
	Confidence      float64 `json:"confidence"`
	EstimatedWeight float64 `json:"estimatedWeight"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
	Reasoning       string  `json:"reasoning"`
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
