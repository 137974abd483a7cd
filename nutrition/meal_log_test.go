package nutrition

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testAt = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

// TestNewMealLog_Snapshot verifies each nutrient is round(per100g*qty/100).
// Pita bread at 150g: 399, 13.5->14, 84, 1.8->2.
func TestNewMealLog_Snapshot(t *testing.T) {
	food, ok := FindFood("4")
	if !ok {
		t.Fatal("seed food 4 missing")
	}
	log, err := NewMealLog(food, 150, Breakfast, testAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.TotalCalories != 399 || log.Protein != 14 || log.Carbs != 84 || log.Fat != 2 {
		t.Errorf("snapshot = %d kcal / %dP / %dC / %dF, want 399/14/84/2",
			log.TotalCalories, log.Protein, log.Carbs, log.Fat)
	}
	if log.FoodID != "4" || log.FoodName != food.Name {
		t.Errorf("provenance = %q/%q, want 4/%q", log.FoodID, log.FoodName, food.Name)
	}
	if log.ID == "" {
		t.Error("expected a generated id")
	}
	if !log.Timestamp.Equal(testAt) || log.MealType != Breakfast || log.Quantity != 150 {
		t.Errorf("unexpected metadata: %+v", log)
	}
}

// TestNewMealLog_RoundTripAllSeeds checks the stored fields match the rounding
// rule for every seed food at an awkward quantity.
func TestNewMealLog_RoundTripAllSeeds(t *testing.T) {
	const qty = 237.5
	for _, f := range SeedFoods() {
		log, err := NewMealLog(f, qty, Snack, testAt)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", f.NameEn, err)
		}
		want := [4]int{
			int(math.Round(f.CaloriesPer100g * qty / 100)),
			int(math.Round(f.ProteinPer100g * qty / 100)),
			int(math.Round(f.CarbsPer100g * qty / 100)),
			int(math.Round(f.FatPer100g * qty / 100)),
		}
		got := [4]int{log.TotalCalories, log.Protein, log.Carbs, log.Fat}
		if got != want {
			t.Errorf("%s: got %v, want %v", f.NameEn, got, want)
		}
	}
}

// TestNewMealLog_IndependentOfFood verifies later edits to the food do not
// change an existing log.
func TestNewMealLog_IndependentOfFood(t *testing.T) {
	food := FoodItem{ID: "x", Name: "Oats", NameEn: "Oats", CaloriesPer100g: 389, ProteinPer100g: 16.9, CarbsPer100g: 66.3, FatPer100g: 6.9}
	log, err := NewMealLog(food, 40, Breakfast, testAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := log

	food.CaloriesPer100g = 9999
	food.Name = "Changed"

	if log != before {
		t.Errorf("log changed after food edit: %+v vs %+v", log, before)
	}
	if log.TotalCalories != 156 || log.FoodName != "Oats" {
		t.Errorf("got %d kcal %q, want 156 kcal \"Oats\"", log.TotalCalories, log.FoodName)
	}
}

// TestNewMealLog_UniqueIDs verifies two logs of the same food get distinct ids.
func TestNewMealLog_UniqueIDs(t *testing.T) {
	food, _ := FindFood("1")
	a, _ := NewMealLog(food, 100, Lunch, testAt)
	b, _ := NewMealLog(food, 100, Lunch, testAt)
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, both %q", a.ID)
	}
}

func TestNewMealLog_Invalid(t *testing.T) {
	good, _ := FindFood("2")
	cases := []struct {
		name     string
		food     FoodItem
		qty      float64
		mealType MealType
		want     error
	}{
		{"zero quantity", good, 0, Lunch, ErrInvalidQuantity},
		{"negative quantity", good, -10, Lunch, ErrInvalidQuantity},
		{"NaN quantity", good, math.NaN(), Lunch, ErrInvalidQuantity},
		{"unknown meal type", good, 100, "brunch", ErrInvalidMealType},
		{"empty meal type", good, 100, "", ErrInvalidMealType},
		{"nameless food", FoodItem{CaloriesPer100g: 10}, 100, Lunch, ErrInvalidFood},
		{"negative density", FoodItem{Name: "x", FatPer100g: -1}, 100, Lunch, ErrInvalidFood},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMealLog(tc.food, tc.qty, tc.mealType, testAt)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

/* ─── Estimate conversion tests ──────────────────────────────────────── */

// TestFoodFromEstimate verifies densities reproduce the estimate when logged at
// the estimated weight. 250g, 412 kcal -> 164.8 -> 165 kcal/100g.
func TestFoodFromEstimate(t *testing.T) {
	e := Estimate{
		FoodName:        "كبسة دجاج",
		Confidence:      0.8,
		EstimatedWeight: 250,
		Calories:        412,
		Protein:         30,
		Carbs:           45,
		Fat:             12.5,
	}
	food, err := FoodFromEstimate(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if food.CaloriesPer100g != 165 {
		t.Errorf("CaloriesPer100g = %v, want 165", food.CaloriesPer100g)
	}
	if !near(food.ProteinPer100g, 12) || !near(food.CarbsPer100g, 18) || !near(food.FatPer100g, 5) {
		t.Errorf("macro densities = %v/%v/%v, want 12/18/5", food.ProteinPer100g, food.CarbsPer100g, food.FatPer100g)
	}
	if food.Name != e.FoodName || food.NameEn != e.FoodName {
		t.Errorf("names = %q/%q, want %q", food.Name, food.NameEn, e.FoodName)
	}
	if len(food.ID) < 4 || food.ID[:3] != "ai-" {
		t.Errorf("id = %q, want ai- prefix", food.ID)
	}

	log, err := NewMealLog(food, e.EstimatedWeight, Lunch, testAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 165 kcal/100g * 2.5 = 412.5, which rounds up.
	if log.TotalCalories != 413 || log.Protein != 30 || log.Carbs != 45 {
		t.Errorf("logged estimate = %d/%d/%d, want 413/30/45", log.TotalCalories, log.Protein, log.Carbs)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFoodFromEstimate_Invalid(t *testing.T) {
	cases := []struct {
		name string
		e    Estimate
	}{
		{"zero weight", Estimate{FoodName: "x", EstimatedWeight: 0, Calories: 100}},
		{"negative weight", Estimate{FoodName: "x", EstimatedWeight: -5, Calories: 100}},
		{"empty name", Estimate{EstimatedWeight: 100, Calories: 100}},
		{"negative calories", Estimate{FoodName: "x", EstimatedWeight: 100, Calories: -100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FoodFromEstimate(tc.e); !errors.Is(err, ErrInvalidEstimate) {
				t.Errorf("got %v, want ErrInvalidEstimate", err)
			}
		})
	}
}
