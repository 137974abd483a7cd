// CLI tool to write the profile row and print the resulting daily targets.
// Usage: go run ./cmd/set-profile (from the repo root)
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"lg/sahha-go-api/nutrition"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "No .env file loaded: %v\n", err)
	}

	p, err := readProfile(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
		os.Exit(1)
	}
	target, err := nutrition.TargetCalories(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx,
		`INSERT INTO user_profile (id, name, age, gender, weight_kg, height_cm, activity_level, goal)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, age = EXCLUDED.age, gender = EXCLUDED.gender,
			weight_kg = EXCLUDED.weight_kg, height_cm = EXCLUDED.height_cm,
			activity_level = EXCLUDED.activity_level, goal = EXCLUDED.goal,
			updated_at = now()`,
		p.Name, p.Age, string(p.Gender), p.Weight, p.Height, p.ActivityLevel.String(), string(p.Goal),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}

	m := nutrition.Macros(target)
	fmt.Printf("\nProfile saved!\n")
	fmt.Printf("  BMR:     %.0f kcal\n", nutrition.BMR(p))
	fmt.Printf("  TDEE:    %.0f kcal\n", nutrition.TDEE(p))
	fmt.Printf("  Target:  %d kcal\n", target)
	fmt.Printf("  Macros:  %dg protein / %dg carbs / %dg fat\n", m.Protein, m.Carbs, m.Fat)
}

// readProfile prompts for each field on out and reads answers line by line.
func readProfile(r *bufio.Reader, out io.Writer) (nutrition.UserProfile, error) {
	ask := func(prompt string) string {
		fmt.Fprint(out, prompt)
		line, _ := r.ReadString('\n')
		return strings.TrimSpace(line)
	}

	var p nutrition.UserProfile
	var err error

	p.Name = ask("Name: ")
	if p.Age, err = strconv.Atoi(ask("Age: ")); err != nil {
		return p, fmt.Errorf("age: %w", err)
	}
	p.Gender = nutrition.Gender(strings.ToLower(ask("Gender (male/female): ")))
	if p.Weight, err = strconv.ParseFloat(ask("Weight (kg): "), 64); err != nil {
		return p, fmt.Errorf("weight: %w", err)
	}
	if p.Height, err = strconv.ParseFloat(ask("Height (cm): "), 64); err != nil {
		return p, fmt.Errorf("height: %w", err)
	}
	if p.ActivityLevel, err = nutrition.ParseActivityLevel(ask("Activity (sedentary/light/moderate/active/very_active): ")); err != nil {
		return p, err
	}
	p.Goal = nutrition.Goal(ask("Goal (lose/maintain/gain): "))

	return p, p.Validate()
}
