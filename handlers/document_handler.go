// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"time"

	"equilog-server/db"
	"equilog-server/entitlements"
	"equilog-server/metrics"
	"equilog-server/middlewares"
	"equilog-server/models"

	"github.com/labstack/echo/v4"
)

// activeSubscription resolves the caller's active subscription. A nil
// result with nil error means "no plan": zero entitlement, not a failure.
func activeSubscription(c echo.Context, userID uint) (*models.Subscription, error) {
	logger := c.Logger()

	subscription, err := entitlements.ResolveActive(db.Conn, userID)
	if err != nil {
		if errors.Is(err, entitlements.ErrMultipleActiveSubscriptions) {
			logger.Errorf("Data integrity violation for user %d: %v", userID, err)
			return nil, &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: "Subscription data is inconsistent, please contact support",
			}
		}
		logger.Errorf("Failed to resolve subscription: %v", err)
		return nil, echo.ErrInternalServerError
	}
	return subscription, nil
}

func documentLimitDecision(c echo.Context, userID uint) (*DocumentLimitResponse, error) {
	logger := c.Logger()

	subscription, err := activeSubscription(c, userID)
	if err != nil {
		return nil, err
	}

	if subscription == nil {
		return &DocumentLimitResponse{
			CanUploadDocument:  false,
			CurrentDocuments:   0,
			MaxDocuments:       0,
			PlanName:           entitlements.NoPlanName,
			RemainingDocuments: 0,
			LimitType:          string(models.LifetimeScope),
			LimitPeriod:        "lifetime",
		}, nil
	}

	plan := subscription.Plan
	now := time.Now()
	used, err := entitlements.CountUsage(db.Conn, &models.Document{}, userID, plan.DocumentLimitScope, now)
	if err != nil {
		logger.Errorf("Failed to count documents: %v", err)
		return nil, echo.ErrInternalServerError
	}

	decision := entitlements.Evaluate(int(used), plan.MaxDocuments)

	limitPeriod := "lifetime"
	if plan.DocumentLimitScope == models.MonthlyScope {
		limitPeriod = entitlements.MonthStart(now).Format(time.RFC3339)
	}

	return &DocumentLimitResponse{
		CanUploadDocument:  decision.CanProceed,
		CurrentDocuments:   int(used),
		MaxDocuments:       entitlements.LimitValue(plan.MaxDocuments),
		PlanName:           string(plan.Name),
		RemainingDocuments: decision.RemainingValue(),
		LimitType:          string(plan.DocumentLimitScope),
		LimitPeriod:        limitPeriod,
	}, nil
}

// CheckDocumentLimitHandler godoc
// @Summary      Check document upload entitlement
// @Description  Checks whether the authenticated user may upload another training document or video under their plan's limit. Over-quota is a normal business outcome, not an error.
// @Tags         entitlements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object}  DocumentLimitResponse "Entitlement decision"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/entitlements/documents [get]
func CheckDocumentLimitHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	response, err := documentLimitDecision(c, user.ID)
	if err != nil {
		return err
	}

	metrics.RecordDecision("documents", response.CanUploadDocument)
	return c.JSON(http.StatusOK, response)
}

// CreateDocumentHandler godoc
// @Summary      Create a training document
// @Description  Registers a training document or video after checking the plan's document limit. An over-quota request returns the entitlement decision with HTTP 200.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        createDocumentRequest  body  CreateDocumentRequest  true  "Document payload"
// @Success      200 {object}  DocumentLimitResponse "Over quota, document not created"
// @Success      201 {object}  CreateDocumentResponse "Document created"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/documents [post]
func CreateDocumentHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req CreateDocumentRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create document request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.Title == "" {
		logger.Error("Title is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "title field is required",
		}
	}

	decision, err := documentLimitDecision(c, user.ID)
	if err != nil {
		return err
	}
	metrics.RecordDecision("documents", decision.CanUploadDocument)
	if !decision.CanUploadDocument {
		logger.Warnf("Document limit reached for user %d on plan %s", user.ID, decision.PlanName)
		return c.JSON(http.StatusOK, decision)
	}

	kind := models.TrainingDocument
	if req.Kind != nil && models.DocumentKind(*req.Kind) == models.TrainingVideo {
		kind = models.TrainingVideo
	}

	document := models.Document{
		Title:   req.Title,
		Kind:    kind,
		UserID:  user.ID,
		HorseID: req.HorseID,
	}
	if err := db.Conn.Create(&document).Error; err != nil {
		logger.Errorf("Failed to create document: %v", err)
		return echo.ErrInternalServerError
	}

	remaining := decision.RemainingDocuments
	if n, ok := remaining.(int); ok && n > 0 {
		remaining = n - 1
	}

	return c.JSON(http.StatusCreated, CreateDocumentResponse{
		DocumentID:         document.ID,
		Title:              document.Title,
		RemainingDocuments: remaining,
		Message:            "Document created successfully",
	})
}
