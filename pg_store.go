package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lg/sahha-go-api/nutrition"
)

// pgStore keeps the profile as a singleton row (id = 1) in user_profile and
// logs in meal_logs. Schema lives in db/ and is applied by cmd/migrate.
type pgStore struct {
	db *pgxpool.Pool
}

func newPGStore(db *pgxpool.Pool) *pgStore {
	return &pgStore{db: db}
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](pool *pgxpool.Pool, ctx context.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryOne] Query error: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[queryOne] Scan error: %v", err)
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](pool *pgxpool.Pool, ctx context.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryMany] Query error: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] Scan error: %v", err)
	}
	return results, err
}

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// hosted Postgres providers close idle connections after a few minutes.
func getDBPool(ctx context.Context, url string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse DB URL: %v\n", err)
		os.Exit(1)
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// migrations alter a table under a running server.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	log.Println("DB pool ready!")
	return pool
}

/* ─── Row shapes ──────────────────────────────────────────────────────── */

// profileRow maps to user_profile. Enumerations are stored as their text names.
type profileRow struct {
	Name          string  `db:"name"`
	Age           int     `db:"age"`
	Gender        string  `db:"gender"`
	WeightKG      float64 `db:"weight_kg"`
	HeightCM      float64 `db:"height_cm"`
	ActivityLevel string  `db:"activity_level"`
	Goal          string  `db:"goal"`
}

func (r profileRow) toProfile() (nutrition.UserProfile, error) {
	level, err := nutrition.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return nutrition.UserProfile{}, err
	}
	return nutrition.UserProfile{
		Name:          r.Name,
		Age:           r.Age,
		Gender:        nutrition.Gender(r.Gender),
		Weight:        r.WeightKG,
		Height:        r.HeightCM,
		ActivityLevel: level,
		Goal:          nutrition.Goal(r.Goal),
	}, nil
}

// mealLogRow maps to meal_logs.
type mealLogRow struct {
	ID            string    `db:"id"`
	FoodID        string    `db:"food_id"`
	FoodName      string    `db:"food_name"`
	Quantity      float64   `db:"quantity"`
	TotalCalories int       `db:"total_calories"`
	ProteinG      int       `db:"protein_g"`
	CarbsG        int       `db:"carbs_g"`
	FatG          int       `db:"fat_g"`
	LoggedAt      time.Time `db:"logged_at"`
	MealType      string    `db:"meal_type"`
}

func (r mealLogRow) toMealLog() nutrition.MealLog {
	return nutrition.MealLog{
		ID:            r.ID,
		FoodID:        r.FoodID,
		FoodName:      r.FoodName,
		Quantity:      r.Quantity,
		TotalCalories: r.TotalCalories,
		Protein:       r.ProteinG,
		Carbs:         r.CarbsG,
		Fat:           r.FatG,
		Timestamp:     r.LoggedAt,
		MealType:      nutrition.MealType(r.MealType),
	}
}

/* ─── store implementation ───────────────────────────────────────────── */

func (s *pgStore) GetProfile(ctx context.Context) (nutrition.UserProfile, error) {
	row, err := queryOne[profileRow](s.db, ctx,
		`SELECT name, age, gender, weight_kg, height_cm, activity_level, goal
		 FROM user_profile WHERE id = 1`, nil)
	if errors.Is(err, pgx.ErrNoRows) {
		return nutrition.UserProfile{}, errNotFound
	}
	if err != nil {
		return nutrition.UserProfile{}, fmt.Errorf("select profile: %w", err)
	}
	return row.toProfile()
}

func (s *pgStore) SaveProfile(ctx context.Context, p nutrition.UserProfile) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO user_profile (id, name, age, gender, weight_kg, height_cm, activity_level, goal)
		 VALUES (1, @name, @age, @gender, @weightKG, @heightCM, @activityLevel, @goal)
		 ON CONFLICT (id) DO UPDATE SET
			name           = EXCLUDED.name,
			age            = EXCLUDED.age,
			gender         = EXCLUDED.gender,
			weight_kg      = EXCLUDED.weight_kg,
			height_cm      = EXCLUDED.height_cm,
			activity_level = EXCLUDED.activity_level,
			goal           = EXCLUDED.goal,
			updated_at     = now()`,
		pgx.NamedArgs{
			"name": p.Name, "age": p.Age, "gender": string(p.Gender),
			"weightKG": p.Weight, "heightCM": p.Height,
			"activityLevel": p.ActivityLevel.String(), "goal": string(p.Goal),
		})
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (s *pgStore) ListMealLogs(ctx context.Context) ([]nutrition.MealLog, error) {
	rows, err := queryMany[mealLogRow](s.db, ctx,
		`SELECT id, food_id, food_name, quantity, total_calories, protein_g, carbs_g, fat_g, logged_at, meal_type
		 FROM meal_logs
		 ORDER BY logged_at DESC`, nil)
	if err != nil {
		return nil, fmt.Errorf("select meal logs: %w", err)
	}
	logs := make([]nutrition.MealLog, 0, len(rows))
	for _, r := range rows {
		logs = append(logs, r.toMealLog())
	}
	return logs, nil
}

func (s *pgStore) AddMealLog(ctx context.Context, l nutrition.MealLog) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO meal_logs (id, food_id, food_name, quantity, total_calories, protein_g, carbs_g, fat_g, logged_at, meal_type)
		 VALUES (@id, @foodID, @foodName, @quantity, @totalCalories, @proteinG, @carbsG, @fatG, @loggedAt, @mealType)`,
		pgx.NamedArgs{
			"id": l.ID, "foodID": l.FoodID, "foodName": l.FoodName, "quantity": l.Quantity,
			"totalCalories": l.TotalCalories, "proteinG": l.Protein, "carbsG": l.Carbs, "fatG": l.Fat,
			"loggedAt": l.Timestamp, "mealType": string(l.MealType),
		})
	if err != nil {
		return fmt.Errorf("insert meal log: %w", err)
	}
	return nil
}

func (s *pgStore) DeleteMealLog(ctx context.Context, id string) error {
	result, err := s.db.Exec(ctx, "DELETE FROM meal_logs WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("delete meal log: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

// Reset clears both tables in one transaction.
func (s *pgStore) Reset(ctx context.Context) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM meal_logs"); err != nil {
			return fmt.Errorf("clear meal logs: %w", err)
		}
		if _, err := tx.Exec(ctx, "DELETE FROM user_profile"); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		return nil
	})
}
