package main

import (
	"reflect"
	"testing"
)

func TestDescriptionFromFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-10-01-001-create-migrations.sql", "create migrations"},
		{"2026-10-01-003-create-meal-logs.sql", "create meal logs"},
		{"no-prefix.sql", "no prefix"},
		{"2026-10-01-1-short-seq.sql", "2026 10 01 1 short seq"},
	}
	for _, tt := range tests {
		if got := descriptionFromFilename(tt.in); got != tt.want {
			t.Errorf("descriptionFromFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPendingMigrations(t *testing.T) {
	files := []string{
		"db/2026-10-01-003-create-meal-logs.sql",
		"db/2026-10-01-001-create-migrations.sql",
		"db/2026-10-01-002-create-user-profile.sql",
	}
	applied := map[string]bool{"2026-10-01-001-create-migrations.sql": true}

	got := pendingMigrations(files, applied)
	want := []string{
		"db/2026-10-01-002-create-user-profile.sql",
		"db/2026-10-01-003-create-meal-logs.sql",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pendingMigrations = %v, want %v", got, want)
	}
	if files[0] != "db/2026-10-01-003-create-meal-logs.sql" {
		t.Error("pendingMigrations reordered its input")
	}
}
