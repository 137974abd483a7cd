package nutrition

import "testing"

func TestSearchFoods(t *testing.T) {
	cases := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"empty query", "", 5, nil},
		{"english case-insensitive", "GRILLED", 5, []string{"2", "6", "12"}},
		{"arabic substring", "مطبوخ", 5, []string{"1", "5"}},
		{"limit applies", "e", 2, []string{"1", "2"}},
		{"no match", "pizza", 5, nil},
		{"zero limit", "rice", 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SearchFoods(tc.query, tc.limit)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d results %v, want ids %v", len(got), got, tc.want)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("result %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

// TestSeedFoods_Copy verifies callers cannot mutate the built-in table.
func TestSeedFoods_Copy(t *testing.T) {
	foods := SeedFoods()
	if len(foods) != 12 {
		t.Fatalf("expected 12 seed foods, got %d", len(foods))
	}
	foods[0].CaloriesPer100g = 0
	if f, _ := FindFood("1"); f.CaloriesPer100g != 130 {
		t.Errorf("seed table mutated through SeedFoods copy: %v", f.CaloriesPer100g)
	}
	for _, f := range foods {
		if err := f.Validate(); err != nil {
			t.Errorf("seed food %s invalid: %v", f.ID, err)
		}
	}
}

func TestFindFood_Unknown(t *testing.T) {
	if _, ok := FindFood("999"); ok {
		t.Error("expected unknown id to miss")
	}
}
