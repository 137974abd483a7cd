package nutrition

import "strings"

// seedFoods is the built-in food table. Names are Arabic, NameEn English.
var seedFoods = []FoodItem{
	{ID: "1", Name: "أرز مطبوخ", NameEn: "Cooked Rice", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3},
	{ID: "2", Name: "صدر دجاج مشوي", NameEn: "Grilled Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6},
	{ID: "3", Name: "بيض مسلوق", NameEn: "Boiled Egg", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11},
	{ID: "4", Name: "خبز بلدي", NameEn: "Pita Bread", CaloriesPer100g: 266, ProteinPer100g: 9, CarbsPer100g: 56, FatPer100g: 1.2},
	{ID: "5", Name: "عدس مطبوخ", NameEn: "Cooked Lentils", CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4},
	{ID: "6", Name: "لحم بقري مشوي", NameEn: "Grilled Beef", CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15},
	{ID: "7", Name: "سلطة خضراء", NameEn: "Green Salad", CaloriesPer100g: 20, ProteinPer100g: 1, CarbsPer100g: 4, FatPer100g: 0.2},
	{ID: "8", Name: "موز", NameEn: "Banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3},
	{ID: "9", Name: "تفاح", NameEn: "Apple", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2},
	{ID: "10", Name: "حمص بطحينة", NameEn: "Hummus", CaloriesPer100g: 166, ProteinPer100g: 8, CarbsPer100g: 14, FatPer100g: 10},
	{ID: "11", Name: "فول مدمس", NameEn: "Foul Medames", CaloriesPer100g: 110, ProteinPer100g: 8, CarbsPer100g: 18, FatPer100g: 0.5},
	{ID: "12", Name: "سمك مشوي", NameEn: "Grilled Fish", CaloriesPer100g: 140, ProteinPer100g: 25, CarbsPer100g: 0, FatPer100g: 4},
}

// SeedFoods returns a copy of the built-in food table.
func SeedFoods() []FoodItem {
	return append([]FoodItem(nil), seedFoods...)
}

// FindFood looks up a seed food by id.
func FindFood(id string) (FoodItem, bool) {
	for _, f := range seedFoods {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}

// SearchFoods matches query as a substring of the Arabic name, or
// case-insensitively of the English name. An empty query matches nothing.
// At most limit results are returned, in table order.
func SearchFoods(query string, limit int) []FoodItem {
	matches := []FoodItem{}
	if query == "" || limit <= 0 {
		return matches
	}
	lower := strings.ToLower(query)
	for _, f := range seedFoods {
		if strings.Contains(f.Name, query) || strings.Contains(strings.ToLower(f.NameEn), lower) {
			matches = append(matches, f)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
