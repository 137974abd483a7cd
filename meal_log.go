package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/sahha-go-api/nutrition"
)

// defaultTargetCalories is shown on the dashboard before onboarding.
const defaultTargetCalories = 2000

// getMealLogs returns every meal log, newest first. GET /api/meal-logs.
func (h *Handler) getMealLogs(c *gin.Context) {
	logs, err := h.store.ListMealLogs(c)
	if err != nil {
		log.Printf("[getMealLogs] store error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch meal logs")
		return
	}
	// Ensure logs is an empty array (not null) in JSON
	if logs == nil {
		logs = []nutrition.MealLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// createMealLog snapshots a food at the given quantity and stores the log.
// POST /api/meal-logs. See createMealLogRequest for the accepted sources.
func (h *Handler) createMealLog(c *gin.Context) {
	var body createMealLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sources := 0
	for _, set := range []bool{body.FoodID != "", body.Food != nil, body.Estimate != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		apiError(c, http.StatusBadRequest, "exactly one of food_id, food or estimate is required")
		return
	}

	var food nutrition.FoodItem
	switch {
	case body.FoodID != "":
		seed, ok := nutrition.FindFood(body.FoodID)
		if !ok {
			apiError(c, http.StatusNotFound, "food not found")
			return
		}
		food = seed
	case body.Food != nil:
		// Ad hoc foods are not stored on their own; they only live on in the log copy.
		food = *body.Food
		if food.ID == "" {
			food.ID = "custom-" + uuid.NewString()
		}
		if food.NameEn == "" {
			food.NameEn = food.Name
		}
	case body.Estimate != nil:
		converted, err := nutrition.FoodFromEstimate(*body.Estimate)
		if err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		food = converted
		if body.Quantity == nil {
			qty := body.Estimate.EstimatedWeight
			body.Quantity = &qty
		}
	}

	if body.Quantity == nil {
		apiError(c, http.StatusBadRequest, "quantity is required")
		return
	}
	if body.MealType == "" {
		body.MealType = nutrition.Lunch
	}

	entry, err := nutrition.NewMealLog(food, *body.Quantity, body.MealType, h.now())
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.AddMealLog(c, entry); err != nil {
		log.Printf("[createMealLog] store error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to create meal log")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// deleteMealLog removes a meal log. DELETE /api/meal-logs/:id. Returns 204 on
// success, 404 if no log has the id.
func (h *Handler) deleteMealLog(c *gin.Context) {
	err := h.store.DeleteMealLog(c, c.Param("id"))
	if errors.Is(err, errNotFound) {
		apiError(c, http.StatusNotFound, "meal log not found")
		return
	}
	if err != nil {
		log.Printf("[deleteMealLog] store error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to delete meal log")
		return
	}
	c.Status(http.StatusNoContent)
}

// getDailySummary compares the day's targets against what was logged that day.
// GET /api/daily?date=YYYY-MM-DD (defaults to today, server local time).
func (h *Handler) getDailySummary(c *gin.Context) {
	ref := h.now()
	if date := c.Query("date"); date != "" {
		t, err := time.ParseInLocation("2006-01-02", date, ref.Location())
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		ref = t
	}

	summary := dailySummary{TargetCalories: defaultTargetCalories}
	p, err := h.store.GetProfile(c)
	switch {
	case errors.Is(err, errNotFound):
		// Not onboarded yet; keep the default target.
	case err != nil:
		log.Printf("[getDailySummary] profile error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	default:
		target, err := nutrition.TargetCalories(p)
		if err != nil {
			log.Printf("[getDailySummary] stored profile invalid: %v", err)
			apiError(c, http.StatusInternalServerError, "stored profile is invalid")
			return
		}
		summary.HasProfile = true
		summary.TargetCalories = target
	}

	all, err := h.store.ListMealLogs(c)
	if err != nil {
		log.Printf("[getDailySummary] store error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch meal logs")
		return
	}

	start, _ := nutrition.DayBounds(ref)
	summary.Date = DateOnly{start}
	summary.Logs = nutrition.DailyLogs(all, ref)
	summary.Consumed = nutrition.SumTotals(summary.Logs)
	summary.TargetMacros = nutrition.Macros(summary.TargetCalories)
	summary.CaloriesLeft = summary.TargetCalories - summary.Consumed.Calories
	summary.Progress = nutrition.Progress(summary.Consumed.Calories, summary.TargetCalories)

	c.JSON(http.StatusOK, summary)
}
