// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"equilog-server/db"
	"equilog-server/entitlements"
	"equilog-server/metrics"
	"equilog-server/middlewares"
	"equilog-server/models"

	"github.com/labstack/echo/v4"
)

func horseLimitDecision(c echo.Context, userID uint) (*HorseLimitResponse, error) {
	logger := c.Logger()

	subscription, err := activeSubscription(c, userID)
	if err != nil {
		return nil, err
	}

	if subscription == nil {
		return &HorseLimitResponse{
			CanAddHorse:    false,
			CurrentHorses:  0,
			MaxHorses:      0,
			PlanName:       entitlements.NoPlanName,
			RemainingSlots: 0,
		}, nil
	}

	plan := subscription.Plan
	used, err := entitlements.CountUsage(db.Conn, &models.Horse{}, userID, models.LifetimeScope, time.Now())
	if err != nil {
		logger.Errorf("Failed to count horses: %v", err)
		return nil, echo.ErrInternalServerError
	}

	decision := entitlements.Evaluate(int(used), plan.MaxHorses)

	return &HorseLimitResponse{
		CanAddHorse:    decision.CanProceed,
		CurrentHorses:  int(used),
		MaxHorses:      entitlements.LimitValue(plan.MaxHorses),
		PlanName:       string(plan.Name),
		RemainingSlots: decision.RemainingValue(),
	}, nil
}

// CheckHorseLimitHandler godoc
// @Summary      Check horse registration entitlement
// @Description  Checks whether the authenticated user may register another horse under their plan's limit.
// @Tags         entitlements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object}  HorseLimitResponse "Entitlement decision"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/entitlements/horses [get]
func CheckHorseLimitHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	response, err := horseLimitDecision(c, user.ID)
	if err != nil {
		return err
	}

	metrics.RecordDecision("horses", response.CanAddHorse)
	return c.JSON(http.StatusOK, response)
}

// CreateHorseHandler godoc
// @Summary      Register a horse
// @Description  Registers a horse after checking the plan's horse limit. An over-quota request returns the entitlement decision with HTTP 200.
// @Tags         horses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        createHorseRequest  body  CreateHorseRequest  true  "Horse payload"
// @Success      200 {object}  HorseLimitResponse "Over quota, horse not created"
// @Success      201 {object}  CreateHorseResponse "Horse registered"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/horses [post]
func CreateHorseHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req CreateHorseRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create horse request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.Name == "" {
		logger.Error("Name is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "name field is required",
		}
	}

	decision, err := horseLimitDecision(c, user.ID)
	if err != nil {
		return err
	}
	metrics.RecordDecision("horses", decision.CanAddHorse)
	if !decision.CanAddHorse {
		logger.Warnf("Horse limit reached for user %d on plan %s", user.ID, decision.PlanName)
		return c.JSON(http.StatusOK, decision)
	}

	horse := models.Horse{
		Name:     req.Name,
		Breed:    req.Breed,
		YearBorn: req.YearBorn,
		UserID:   user.ID,
	}
	if err := db.Conn.Create(&horse).Error; err != nil {
		logger.Errorf("Failed to create horse: %v", err)
		return echo.ErrInternalServerError
	}

	remaining := decision.RemainingSlots
	if n, ok := remaining.(int); ok && n > 0 {
		remaining = n - 1
	}

	return c.JSON(http.StatusCreated, CreateHorseResponse{
		HorseID:        horse.ID,
		Name:           horse.Name,
		RemainingSlots: remaining,
		Message:        "Horse registered successfully",
	})
}
