// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"equilog-server/db"
	"equilog-server/entitlements"
	"equilog-server/middlewares"
	"equilog-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UpdateUserProfileHandler godoc
// @Summary      Update a user profile
// @Description  Updates a user's profile fields. Allowed for the user themselves, users holding the ADMIN role, and the configured privileged identity.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        adminProfileUpdateRequest  body  AdminProfileUpdateRequest  true  "Target user and fields to update"
// @Success      200 {object}  AdminProfileUpdateResponse "Profile updated"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      403 {object} echo.HTTPError     "Not permitted to update this profile"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/admin/users/profile [post]
func UpdateUserProfileHandler(c echo.Context) error {
	logger := c.Logger()

	requester, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req AdminProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid profile update request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.UserID == 0 {
		logger.Error("Target user ID is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "userId field is required",
		}
	}

	allowed, err := entitlements.CanManageProfile(db.Conn, requester, req.UserID)
	if err != nil {
		logger.Errorf("Failed to check profile authorization: %v", err)
		return echo.ErrInternalServerError
	}
	if !allowed {
		logger.Warnf("User %d denied profile update for user %d", requester.ID, req.UserID)
		return &echo.HTTPError{
			Code:    http.StatusForbidden,
			Message: "You are not permitted to update this profile",
		}
	}

	var target models.User
	if err := db.Conn.Where("id = ?", req.UserID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("Profile update target %d not found", req.UserID)
			return &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: "User not found",
			}
		}
		logger.Errorf("Failed to fetch target user: %v", err)
		return echo.ErrInternalServerError
	}

	updates := map[string]any{}
	if req.UpdateData.FullName != nil {
		updates["full_name"] = *req.UpdateData.FullName
	}
	if req.UpdateData.StableName != nil {
		updates["stable_name"] = *req.UpdateData.StableName
	}
	if req.UpdateData.Discipline != nil {
		updates["discipline"] = *req.UpdateData.Discipline
	}

	if len(updates) == 0 {
		return c.JSON(http.StatusOK, AdminProfileUpdateResponse{
			Success: true,
			Message: "Nothing to update",
		})
	}

	if err := db.Conn.Model(&target).Updates(updates).Error; err != nil {
		logger.Errorf("Failed to update profile: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Profile of user %d updated by user %d", target.ID, requester.ID)
	return c.JSON(http.StatusOK, AdminProfileUpdateResponse{
		Success: true,
		Message: "Profile updated successfully",
	})
}

// GrantRoleHandler godoc
// @Summary      Grant a role to a user
// @Description  Grants a named role to a user. Only users holding the ADMIN role or the configured privileged identity may grant roles.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        grantRoleRequest  body  GrantRoleRequest  true  "Target user and role"
// @Success      200 {object}  GenericResponse "Role granted"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      403 {object} echo.HTTPError     "Not permitted to grant roles"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/admin/users/roles [post]
func GrantRoleHandler(c echo.Context) error {
	logger := c.Logger()

	requester, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	isAdmin, err := entitlements.HasAdminRole(db.Conn, requester.ID)
	if err != nil {
		logger.Errorf("Failed to check admin role: %v", err)
		return echo.ErrInternalServerError
	}
	if !isAdmin && !entitlements.IsPrivilegedIdentity(requester.Email) {
		logger.Warnf("User %d denied role grant", requester.ID)
		return &echo.HTTPError{
			Code:    http.StatusForbidden,
			Message: "You are not permitted to grant roles",
		}
	}

	var req GrantRoleRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid grant role request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.UserID == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "userId field is required",
		}
	}
	if models.RoleName(req.Role) != models.AdminRole {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "role must be ADMIN",
		}
	}

	role := models.UserRole{}
	if err := db.Conn.Where("user_id = ? AND role = ?", req.UserID, models.AdminRole).
		Assign(models.UserRole{UserID: req.UserID, Role: models.AdminRole}).
		FirstOrCreate(&role).Error; err != nil {
		logger.Errorf("Failed to grant role: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Role %s granted to user %d by user %d", req.Role, req.UserID, requester.ID)
	return c.JSON(http.StatusOK, GenericResponse{
		Message: "Role granted successfully",
	})
}
