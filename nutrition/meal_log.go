package nutrition

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// NewMealLog snapshots food's nutrient density for quantity grams. Each field is
// round(per100g * quantity / 100); the log keeps the values, not a reference to
// food, so editing the food afterwards has no effect on it.
func NewMealLog(food FoodItem, quantity float64, mealType MealType, at time.Time) (MealLog, error) {
	if err := food.Validate(); err != nil {
		return MealLog{}, err
	}
	if !positive(quantity) {
		return MealLog{}, fmt.Errorf("%w: quantity must be a positive number of grams", ErrInvalidQuantity)
	}
	if !mealType.Valid() {
		return MealLog{}, fmt.Errorf("%w: %q, expected one of: breakfast, lunch, dinner, snack", ErrInvalidMealType, mealType)
	}

	return MealLog{
		ID:            uuid.NewString(),
		FoodID:        food.ID,
		FoodName:      food.Name,
		Quantity:      quantity,
		TotalCalories: portion(food.CaloriesPer100g, quantity),
		Protein:       portion(food.ProteinPer100g, quantity),
		Carbs:         portion(food.CarbsPer100g, quantity),
		Fat:           portion(food.FatPer100g, quantity),
		Timestamp:     at,
		MealType:      mealType,
	}, nil
}

// portion scales a per-100g value to quantity grams.
func portion(per100g, quantity float64) int {
	return int(math.Round(per100g * quantity / 100))
}

// FoodFromEstimate turns a photo estimate into an ad hoc FoodItem whose
// densities reproduce the estimate when logged at EstimatedWeight grams.
// Calories per 100g are rounded to whole kcal; macro densities are kept exact.
func FoodFromEstimate(e Estimate) (FoodItem, error) {
	if e.FoodName == "" {
		return FoodItem{}, fmt.Errorf("%w: food name is empty", ErrInvalidEstimate)
	}
	if !positive(e.EstimatedWeight) {
		return FoodItem{}, fmt.Errorf("%w: estimated weight must be positive", ErrInvalidEstimate)
	}

	w := e.EstimatedWeight
	food := FoodItem{
		ID:              "ai-" + uuid.NewString(),
		Name:            e.FoodName,
		NameEn:          e.FoodName,
		CaloriesPer100g: math.Round(e.Calories / w * 100),
		ProteinPer100g:  e.Protein / w * 100,
		CarbsPer100g:    e.Carbs / w * 100,
		FatPer100g:      e.Fat / w * 100,
	}
	if err := food.Validate(); err != nil {
		return FoodItem{}, fmt.Errorf("%w: %v", ErrInvalidEstimate, err)
	}
	return food, nil
}
