// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"equilog-server/crypto"
	"equilog-server/db"
	"equilog-server/models"
	"equilog-server/notifications"
	"equilog-server/passwordcheck"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SignupHandler godoc
// @Summary      Register a new user
// @Description  Creates a new user account, subscribes it to the FREE plan and sends a welcome email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signupRequest  body  SignupRequest  true  "Signup request payload"
// @Success      201 {object} GenericResponse 	 "Signup successful"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      409 {object} echo.HTTPError     "Duplicate user"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/auth/signup [post]
func SignupHandler(c echo.Context) error {
	logger := c.Logger()

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid signup request payload:", err)
		return echo.ErrBadRequest
	}

	if req.Email == "" {
		logger.Error("Email is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "email field is required",
		}
	}

	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	if err := passwordcheck.ValidatePassword(c.Request().Context(), req.Password); err != nil {
		logger.Error("Password validation failed: ", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid password: %v", err.Error()),
		}
	}

	count := db.Conn.Where("email = ?", req.Email).First(&models.User{}).RowsAffected
	if count > 0 {
		logger.Errorf("This email is already registered.")
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: "This email is already registered, please try another one.",
		}
	}

	newCrypto := crypto.NewCrypto()
	hash, err := newCrypto.HashPassword(req.Password)
	if err != nil {
		logger.Errorf("Failed to hash password: %v", err)
		return echo.ErrInternalServerError
	}

	aid, err := crypto.GenerateRandomString("acct_", 16, "hex")
	if err != nil {
		logger.Errorf("Failed to generate account ID: %v", err)
		return echo.ErrInternalServerError
	}

	user := models.User{
		AccountID:  aid,
		Email:      req.Email,
		Password:   hash,
		FullName:   req.FullName,
		StableName: req.StableName,
		Discipline: req.Discipline,
	}

	var freePlan models.Plan
	if err := db.Conn.Where("name = ?", models.FreePlan).First(&freePlan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("FREE plan is missing, run migrations first.")
		} else {
			logger.Errorf("Failed to fetch FREE plan: %v", err)
		}
		return echo.ErrInternalServerError
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to create user: %v", err)
		return echo.ErrInternalServerError
	}

	subscription := models.Subscription{
		UserID:    user.ID,
		PlanID:    freePlan.ID,
		IsActive:  true,
		StartedAt: time.Now(),
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

	go func() {
		data := notifications.NotificationData{
			To:       user.Email,
			ToName:   user.FullName,
			Subject:  "Welcome to EquiLog",
			Template: "welcome",
			Variables: map[string]any{
				"full_name": user.FullName,
				"plan_name": string(freePlan.Name),
			},
		}
		if err := notifications.DispatchNotification(notifications.Email, notifications.SMTP, data); err != nil {
			c.Logger().Errorf("Failed to send welcome email: %v", err)
		}
	}()

	logger.Infof("User account created.")
	return c.JSON(http.StatusCreated, GenericResponse{
		Message: "Signup successful, you can now login",
	})
}
