// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"equilog-server/commons"
	"equilog-server/db"
	"equilog-server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func VerifyAuthMiddleware() func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer token is required",
				}
			}

			sessionToken := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key")), nil
			})

			if err == nil && token.Valid {
				claims, ok := token.Claims.(jwt.MapClaims)
				if ok {
					sessionID := claims["sid"]
					userID := claims["uid"]
					tokenID := claims["jti"]

					session := models.Session{}
					err = db.Conn.Where("id = ? AND user_id = ? AND token = ?", sessionID, userID, tokenID).First(&session).Error
					if err == nil && !session.ExpiresAt.Before(time.Now()) {
						now := time.Now()
						session.LastUsedAt = &now

						if err := db.Conn.Save(&session).Error; err != nil {
							logger.Error("Failed to update session LastUsedAt: ", err)
						}

						c.Set("session", session)
						return next(c)
					}
				}
			}

			logger.Error("Authentication failed.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired authentication token",
			}
		}
	}
}

func GetAuthenticatedUser(c echo.Context) (*models.User, error) {
	if session, ok := c.Get("session").(models.Session); ok {
		var user models.User
		err := db.Conn.Where("id = ?", session.UserID).First(&user).Error
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	return nil, errors.New("no authenticated user found")
}

func GetAuthenticatedUserID(c echo.Context) (uint, error) {
	user, err := GetAuthenticatedUser(c)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
