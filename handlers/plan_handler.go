// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"equilog-server/db"
	"equilog-server/models"

	"github.com/labstack/echo/v4"
)

func planFeatures(plan models.Plan) []string {
	features := []string{}

	if plan.MaxHorses == models.UnlimitedLimit {
		features = append(features, "Unlimited horses")
	} else {
		features = append(features, fmt.Sprintf("%d horse(s)", plan.MaxHorses))
	}

	if plan.MaxDocuments == models.UnlimitedLimit {
		features = append(features, "Unlimited training documents")
	} else if plan.DocumentLimitScope == models.MonthlyScope {
		features = append(features, fmt.Sprintf("%d documents/month", plan.MaxDocuments))
	} else {
		features = append(features, fmt.Sprintf("%d documents total", plan.MaxDocuments))
	}

	if plan.MaxAnalysesPerMonth == models.UnlimitedLimit {
		features = append(features, "Unlimited analyses/month")
	} else {
		features = append(features, fmt.Sprintf("%d analyses/month", plan.MaxAnalysesPerMonth))
	}

	switch plan.Name {
	case models.FreePlan:
		features = append(features, "Community support")
	case models.PlusPlan:
		features = append(features, "Priority support")
	case models.ProPlan:
		features = append(features, "Priority support", "Early access to new analysis models")
	}

	return features
}

// GetPlansHandler godoc
// @Summary      Get available plans
// @Description  Retrieves all available subscription plans with monthly and annual pricing options for display to clients.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Success      200 {object}  GetPlansResponse "Plans retrieved successfully"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/plans [get]
func GetPlansHandler(c echo.Context) error {
	logger := c.Logger()

	var plans []models.Plan
	result := db.Conn.Order("price_monthly ASC").Find(&plans)
	if result.Error != nil {
		logger.Error("Failed to retrieve plans:", result.Error)
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve plans",
		}
	}

	var planOptions []PlanOption
	for _, plan := range plans {
		planOptions = append(planOptions, PlanOption{
			ID:   plan.ID,
			Name: string(plan.Name),
			Pricing: PlanPricing{
				Monthly:  plan.PriceMonthly,
				Annual:   plan.PriceAnnual,
				Currency: plan.Currency,
			},
			Recommended: plan.Name == models.PlusPlan,
			Features:    planFeatures(plan),
		})
	}

	return c.JSON(http.StatusOK, GetPlansResponse{
		Message: "Plans retrieved successfully",
		Plans:   planOptions,
	})
}
