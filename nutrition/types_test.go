package nutrition

import (
	"encoding/json"
	"errors"
	"testing"
)

// TestActivityLevel_JSON verifies names and legacy numeric tags both decode and
// that encoding always uses the name.
func TestActivityLevel_JSON(t *testing.T) {
	cases := []struct {
		in   string
		want ActivityLevel
	}{
		{`"sedentary"`, Sedentary},
		{`"1.2"`, Sedentary},
		{`"light"`, Light},
		{`"1.375"`, Light},
		{`"moderate"`, Moderate},
		{`"1.55"`, Moderate},
		{`"active"`, Active},
		{`"1.725"`, Active},
		{`"very_active"`, VeryActive},
		{`"1.9"`, VeryActive},
	}
	for _, tc := range cases {
		var got ActivityLevel
		if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
			t.Errorf("Unmarshal(%s): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, got, tc.want)
		}
		out, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", got, err)
		}
		if string(out) != `"`+tc.want.String()+`"` {
			t.Errorf("Marshal(%v) = %s", got, out)
		}
	}
}

// TestActivityLevel_RejectsUnknown verifies no interpolation or defaulting.
func TestActivityLevel_RejectsUnknown(t *testing.T) {
	for _, in := range []string{`"1.5"`, `"1.55 "`, `"Moderate"`, `""`, `1.55`} {
		var a ActivityLevel
		err := json.Unmarshal([]byte(in), &a)
		if !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("Unmarshal(%s) err = %v, want ErrInvalidProfile", in, err)
		}
	}
	if _, err := json.Marshal(ActivityLevel(0)); err == nil {
		t.Error("expected marshal of zero level to fail")
	}
}

// TestUserProfile_DecodeOriginalShape decodes a profile saved by the original
// client, where activityLevel was a numeric string.
func TestUserProfile_DecodeOriginalShape(t *testing.T) {
	raw := `{"name":"سارة","age":31,"gender":"female","weight":62,"height":164,"activityLevel":"1.375","goal":"lose"}`
	var p UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.ActivityLevel != Light || p.Goal != LoseWeight || p.Gender != Female {
		t.Errorf("decoded %+v", p)
	}
}
