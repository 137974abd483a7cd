package main

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/sahha-go-api/nutrition"
)

// buildProfileResponse derives BMR, TDEE, target and macros from p.
func buildProfileResponse(p nutrition.UserProfile) (profileResponse, error) {
	target, err := nutrition.TargetCalories(p)
	if err != nil {
		return profileResponse{}, err
	}
	return profileResponse{
		Profile:        p,
		BMR:            int(math.Round(nutrition.BMR(p))),
		TDEE:           int(math.Round(nutrition.TDEE(p))),
		TargetCalories: target,
		Macros:         nutrition.Macros(target),
	}, nil
}

// getProfile returns the saved profile with its computed energy targets.
// GET /api/profile. 404 before onboarding.
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.store.GetProfile(c)
	if errors.Is(err, errNotFound) {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		log.Printf("[getProfile] store error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	resp, err := buildProfileResponse(p)
	if err != nil {
		log.Printf("[getProfile] stored profile invalid: %v", err)
		apiError(c, http.StatusInternalServerError, "stored profile is invalid")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// putProfile replaces the profile. PUT /api/profile.
// This is a full overwrite: omitted fields are zero and fail validation, so
// there is no partial update.
func (h *Handler) putProfile(c *gin.Context) {
	var p nutrition.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		// Enum decoding failures carry a useful message; anything else is malformed JSON.
		if errors.Is(err, nutrition.ErrInvalidProfile) {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := buildProfileResponse(p)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveProfile(c, p); err != nil {
		log.Printf("[putProfile] store error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// resetProfile deletes the profile and every meal log. DELETE /api/profile.
func (h *Handler) resetProfile(c *gin.Context) {
	if err := h.store.Reset(c); err != nil {
		log.Printf("[resetProfile] store error: %v", err)
		apiError(c, http.StatusInternalServerError, "failed to reset")
		return
	}
	c.Status(http.StatusNoContent)
}
