// CLI tool to run pending database migrations from db/.
// Checks the migrations table to skip already-applied files.
// Wraps each migration + record insert in a single transaction.
// Usage: go run ./cmd/migrate [-dir db] (from the repo root)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

var migrationPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{3}-`)

func main() {
	dbDir := flag.String("dir", "db", "directory holding the *.sql migrations")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "No .env file loaded: %v\n", err)
	}
	url := os.Getenv("DB_URL")
	if url == "" {
		fmt.Fprintln(os.Stderr, "DB_URL is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	files, err := filepath.Glob(filepath.Join(*dbDir, "*.sql"))
	if err != nil || len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No migration files found in %s\n", *dbDir)
		os.Exit(1)
	}

	ran, err := applyPending(ctx, conn, files, appliedMigrations(ctx, conn))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if ran == 0 {
		fmt.Println("No pending migrations.")
	} else {
		fmt.Printf("\n%d migration(s) applied.\n", ran)
	}
}

// appliedMigrations returns the recorded migration filenames. The table does
// not exist before the first migration, which reads as "nothing applied".
func appliedMigrations(ctx context.Context, conn *pgx.Conn) map[string]bool {
	applied := make(map[string]bool)
	rows, err := conn.Query(ctx, "SELECT migration FROM migrations")
	if err != nil {
		return applied
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return applied
	}
	for _, name := range names {
		applied[name] = true
	}
	return applied
}

// pendingMigrations returns the files not yet applied, in filename order.
func pendingMigrations(files []string, applied map[string]bool) []string {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)
	var pending []string
	for _, f := range sorted {
		if applied[filepath.Base(f)] {
			fmt.Printf("  skip: %s\n", filepath.Base(f))
			continue
		}
		pending = append(pending, f)
	}
	return pending
}

// applyPending runs each pending file and records it in one transaction. It
// stops at the first failure; earlier migrations stay committed.
func applyPending(ctx context.Context, conn *pgx.Conn, files []string, applied map[string]bool) (int, error) {
	ran := 0
	for _, f := range pendingMigrations(files, applied) {
		filename := filepath.Base(f)
		content, err := os.ReadFile(f)
		if err != nil {
			return ran, fmt.Errorf("reading %s: %w", filename, err)
		}

		err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("running %s: %w", filename, err)
			}
			if _, err := tx.Exec(ctx, "INSERT INTO migrations (migration, description) VALUES ($1, $2)",
				filename, descriptionFromFilename(filename)); err != nil {
				return fmt.Errorf("recording %s: %w", filename, err)
			}
			return nil
		})
		if err != nil {
			return ran, err
		}

		fmt.Printf("  applied: %s\n", filename)
		ran++
	}
	return ran, nil
}

// descriptionFromFilename strips the YYYY-MM-DD-NNN- prefix and .sql suffix.
func descriptionFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".sql")
	name = migrationPrefix.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "-", " ")
}
