// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"equilog-server/entitlements"
	"equilog-server/middlewares"
	"equilog-server/models"

	"github.com/labstack/echo/v4"
)

func planDetails(plan models.Plan) PlanDetails {
	return PlanDetails{
		ID:                  plan.ID,
		Name:                string(plan.Name),
		PriceMonthly:        plan.PriceMonthly,
		PriceAnnual:         plan.PriceAnnual,
		Currency:            plan.Currency,
		MaxDocuments:        entitlements.LimitValue(plan.MaxDocuments),
		DocumentLimitScope:  string(plan.DocumentLimitScope),
		MaxHorses:           entitlements.LimitValue(plan.MaxHorses),
		MaxAnalysesPerMonth: entitlements.LimitValue(plan.MaxAnalysesPerMonth),
	}
}

// SubscriptionStatusHandler godoc
// @Summary      Get subscription status
// @Description  Reports whether the authenticated user has an active subscription and, when they do, its plan and coupon details. No subscription is a normal outcome, not an error.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object}  SubscriptionStatusResponse "Subscription status"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/subscriptions/status [get]
func SubscriptionStatusHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	subscription, err := activeSubscription(c, user.ID)
	if err != nil {
		return err
	}

	if subscription == nil {
		return c.JSON(http.StatusOK, SubscriptionStatusResponse{
			Subscribed:   false,
			Subscription: nil,
		})
	}

	var endsAt *string
	if subscription.EndsAt != nil {
		formatted := subscription.EndsAt.Format(time.RFC3339)
		endsAt = &formatted
	}

	var coupon *CouponDetails
	if subscription.Coupon != nil {
		coupon = &CouponDetails{
			Code:            subscription.Coupon.Code,
			DiscountPercent: subscription.Coupon.DiscountPercent,
		}
	}

	return c.JSON(http.StatusOK, SubscriptionStatusResponse{
		Subscribed: true,
		Subscription: &SubscriptionDetails{
			SubscriptionID: subscription.SubscriptionID,
			IsTrial:        subscription.IsTrial,
			StartedAt:      subscription.StartedAt.Format(time.RFC3339),
			EndsAt:         endsAt,
			Plan:           planDetails(subscription.Plan),
			Coupon:         coupon,
		},
	})
}
