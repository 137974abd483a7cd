package main

import (
	"context"
	"errors"

	"lg/sahha-go-api/nutrition"
)

// errNotFound is returned by stores when the profile or a meal log is missing.
var errNotFound = errors.New("not found")

// store persists the single user profile and the meal log collection. The
// handler receives one at startup; there is no package-level storage state.
type store interface {
	// GetProfile returns errNotFound until a profile has been saved.
	GetProfile(ctx context.Context) (nutrition.UserProfile, error)
	// SaveProfile replaces the whole profile (no field merge).
	SaveProfile(ctx context.Context, p nutrition.UserProfile) error
	// ListMealLogs returns every log, newest first.
	ListMealLogs(ctx context.Context) ([]nutrition.MealLog, error)
	AddMealLog(ctx context.Context, l nutrition.MealLog) error
	// DeleteMealLog returns errNotFound when no log has the id.
	DeleteMealLog(ctx context.Context, id string) error
	// Reset removes the profile and all logs.
	Reset(ctx context.Context) error
}
