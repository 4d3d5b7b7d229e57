// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"equilog-server/entitlements"
	"equilog-server/middlewares"

	"github.com/labstack/echo/v4"
)

// GetUserHandler godoc
// @Summary      Get user details
// @Description  Retrieves the details of the authenticated user, including the current plan name.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object}  GetUserResponse 	 "User retrieved successfully"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/users/ [get]
func GetUserHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	planName := entitlements.NoPlanName
	subscription, err := activeSubscription(c, user.ID)
	if err != nil {
		return err
	}
	if subscription != nil {
		planName = string(subscription.Plan.Name)
	}

	return c.JSON(http.StatusOK, GetUserResponse{
		Message:    "User retrieved successfully",
		AccountID:  user.AccountID,
		Email:      user.Email,
		FullName:   user.FullName,
		StableName: user.StableName,
		Discipline: user.Discipline,
		Plan:       planName,
	})
}
