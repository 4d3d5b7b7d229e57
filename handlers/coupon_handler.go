// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"equilog-server/db"
	"equilog-server/entitlements"
	"equilog-server/metrics"

	"github.com/labstack/echo/v4"
)

// ValidateCouponHandler godoc
// @Summary      Validate a coupon code
// @Description  Checks a coupon code against expiry and redemption limits. An invalid coupon is a normal business outcome returned with HTTP 200; validation never consumes a redemption.
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        validateCouponRequest  body  ValidateCouponRequest  true  "Coupon code to validate"
// @Success      200 {object}  ValidateCouponResponse "Validation result"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/coupons/validate [post]
func ValidateCouponHandler(c echo.Context) error {
	logger := c.Logger()

	var req ValidateCouponRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid coupon validation request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.CouponCode == "" {
		logger.Error("Coupon code is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "couponCode field is required",
		}
	}

	result, err := entitlements.ValidateCoupon(db.Conn, req.CouponCode, time.Now())
	if err != nil {
		logger.Errorf("Failed to validate coupon: %v", err)
		return echo.ErrInternalServerError
	}

	metrics.RecordCouponValidation(result.Valid)

	if !result.Valid {
		reason := result.Reason
		return c.JSON(http.StatusOK, ValidateCouponResponse{
			Valid: false,
			Error: &reason,
		})
	}

	var expiresAt *string
	if result.ExpiresAt != nil {
		formatted := result.ExpiresAt.Format(time.RFC3339)
		expiresAt = &formatted
	}

	discount := result.DiscountPercent
	code := result.Code
	return c.JSON(http.StatusOK, ValidateCouponResponse{
		Valid:           true,
		DiscountPercent: &discount,
		Code:            &code,
		ExpiresAt:       expiresAt,
	})
}
