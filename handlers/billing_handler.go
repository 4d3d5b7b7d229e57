// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"equilog-server/commons"
	"equilog-server/db"
	"equilog-server/entitlements"
	"equilog-server/middlewares"
	"equilog-server/models"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
	"gorm.io/gorm"
)

// InitStripe wires the Stripe API key from the environment. Billing
// endpoints refuse to work without it.
func InitStripe() {
	stripe.Key = commons.GetEnv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		commons.Logger.Warn("STRIPE_SECRET_KEY is not set, billing endpoints will fail")
	}
}

func discountedAmount(amount uint, discountPercent uint) int64 {
	if discountPercent == 0 {
		return int64(amount)
	}
	return int64(float64(amount) * (1 - float64(discountPercent)/100))
}

// CreateCheckoutSessionHandler godoc
// @Summary      Start a checkout for a paid plan
// @Description  Creates a Stripe Checkout Session for the selected plan. A valid coupon reduces the charged amount by its discount percentage; a rejected coupon is a business outcome returned with HTTP 200.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        createCheckoutRequest  body  CreateCheckoutRequest  true  "Plan and billing interval"
// @Success      200 {object}  CreateCheckoutResponse "Checkout URL or refusal reason"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/billing/checkout [post]
func CreateCheckoutSessionHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req CreateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid checkout request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.PlanID == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "plan_id field is required",
		}
	}

	var plan models.Plan
	if err := db.Conn.Where("id = ?", req.PlanID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Unknown plan",
			}
		}
		logger.Errorf("Failed to fetch plan: %v", err)
		return echo.ErrInternalServerError
	}

	amount := plan.PriceMonthly
	interval := "month"
	if req.Annual {
		amount = plan.PriceAnnual
		interval = "year"
	}
	if amount == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "This plan has no paid checkout",
		}
	}

	var discountPercent uint
	var couponCode string
	if req.CouponCode != nil && *req.CouponCode != "" {
		result, err := entitlements.ValidateCoupon(db.Conn, *req.CouponCode, time.Now())
		if err != nil {
			logger.Errorf("Failed to validate coupon: %v", err)
			return echo.ErrInternalServerError
		}
		if !result.Valid {
			reason := result.Reason
			return c.JSON(http.StatusOK, CreateCheckoutResponse{Error: &reason})
		}
		discountPercent = result.DiscountPercent
		couponCode = result.Code
	}

	frontendURL := strings.TrimRight(commons.GetEnv("FRONTEND_URL", "http://localhost:3000"), "/")

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(user.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(plan.Currency)),
					UnitAmount: stripe.Int64(discountedAmount(amount, discountPercent)),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(interval),
					},
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("EquiLog " + string(plan.Name)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(frontendURL + "/billing/success"),
		CancelURL:  stripe.String(frontendURL + "/billing/cancel"),
	}
	params.Metadata = map[string]string{
		"account_id":  user.AccountID,
		"plan_id":     strconv.FormatUint(uint64(plan.ID), 10),
		"interval":    interval,
		"coupon_code": couponCode,
	}

	sess, err := session.New(params)
	if err != nil {
		logger.Errorf("Failed to create checkout session: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, CreateCheckoutResponse{URL: sess.URL})
}

// StripeWebhookHandler godoc
// @Summary      Stripe webhook
// @Description  Handles Stripe events. A completed checkout activates the purchased subscription and deactivates the previous one.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Success      200 {object}  GenericResponse "Event processed"
// @Failure      400 {object} echo.HTTPError     "Invalid payload or signature"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/billing/webhook [post]
func StripeWebhookHandler(c echo.Context) error {
	logger := c.Logger()

	const maxBodyBytes = int64(65536)
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		logger.Errorf("Failed to read webhook payload: %v", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid payload",
		}
	}

	endpointSecret := commons.GetEnv("STRIPE_WEBHOOK_SECRET")
	if endpointSecret == "" {
		logger.Error("STRIPE_WEBHOOK_SECRET is not set.")
		return echo.ErrInternalServerError
	}

	event, err := webhook.ConstructEventWithOptions(
		body,
		c.Request().Header.Get("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		logger.Errorf("Webhook signature verification failed: %v", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Signature verification failed",
		}
	}

	if event.Type == "checkout.session.completed" {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			logger.Errorf("Failed to unmarshal checkout session: %v", err)
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "Invalid payload",
			}
		}
		if err := activatePurchasedSubscription(c, sess.Metadata); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, GenericResponse{Message: "Event processed"})
}

func activatePurchasedSubscription(c echo.Context, metadata map[string]string) error {
	logger := c.Logger()

	accountID := metadata["account_id"]
	planID, err := strconv.ParseUint(metadata["plan_id"], 10, 64)
	if accountID == "" || err != nil {
		logger.Error("Checkout session metadata is incomplete.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid payload",
		}
	}

	var user models.User
	if err := db.Conn.Where("account_id = ?", accountID).First(&user).Error; err != nil {
		logger.Errorf("Failed to find user for checkout: %v", err)
		return echo.ErrInternalServerError
	}

	var couponID *uint
	if code := metadata["coupon_code"]; code != "" {
		var coupon models.Coupon
		if err := db.Conn.Where("code = ?", code).First(&coupon).Error; err == nil {
			couponID = &coupon.ID
		}
	}

	endsAt := time.Now().AddDate(0, 1, 0)
	if metadata["interval"] == "year" {
		endsAt = time.Now().AddDate(1, 0, 0)
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	// Deactivate before insert so the partial unique index on active
	// subscriptions is never violated.
	if err := tx.Model(&models.Subscription{}).
		Where("user_id = ? AND is_active = ?", user.ID, true).
		Update("is_active", false).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to deactivate previous subscription: %v", err)
		return echo.ErrInternalServerError
	}

	subscription := models.Subscription{
		UserID:    user.ID,
		PlanID:    uint(planID),
		IsActive:  true,
		StartedAt: time.Now(),
		EndsAt:    &endsAt,
		CouponID:  couponID,
	}
	if err := tx.Create(&subscription).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to create subscription: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Subscription activated for account %s", accountID)
	return nil
}
