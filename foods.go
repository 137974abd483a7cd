package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/sahha-go-api/nutrition"
)

const foodSearchLimit = 5

// searchFoods returns up to five seed foods matching q.
// GET /api/foods?q=... An empty q returns an empty array.
func (h *Handler) searchFoods(c *gin.Context) {
	c.JSON(http.StatusOK, nutrition.SearchFoods(c.Query("q"), foodSearchLimit))
}

// getFood returns one seed food. GET /api/foods/:id.
func (h *Handler) getFood(c *gin.Context) {
	food, ok := nutrition.FindFood(c.Param("id"))
	if !ok {
		apiError(c, http.StatusNotFound, "food not found")
		return
	}
	c.JSON(http.StatusOK, food)
}
