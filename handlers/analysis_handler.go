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
	"equilog-server/queue"

	"github.com/labstack/echo/v4"
)

func analysisLimitDecision(c echo.Context, userID uint) (*AnalysisLimitResponse, error) {
	logger := c.Logger()

	subscription, err := activeSubscription(c, userID)
	if err != nil {
		return nil, err
	}

	if subscription == nil {
		return &AnalysisLimitResponse{
			CanRunAnalysis:    false,
			CurrentAnalyses:   0,
			MaxAnalyses:       0,
			PlanName:          entitlements.NoPlanName,
			RemainingAnalyses: 0,
		}, nil
	}

	plan := subscription.Plan
	used, err := entitlements.CountUsage(db.Conn, &models.Analysis{}, userID, models.MonthlyScope, time.Now())
	if err != nil {
		logger.Errorf("Failed to count analyses: %v", err)
		return nil, echo.ErrInternalServerError
	}

	decision := entitlements.Evaluate(int(used), plan.MaxAnalysesPerMonth)

	return &AnalysisLimitResponse{
		CanRunAnalysis:    decision.CanProceed,
		CurrentAnalyses:   int(used),
		MaxAnalyses:       entitlements.LimitValue(plan.MaxAnalysesPerMonth),
		PlanName:          string(plan.Name),
		RemainingAnalyses: decision.RemainingValue(),
	}, nil
}

// CheckAnalysisLimitHandler godoc
// @Summary      Check analysis entitlement
// @Description  Checks whether the authenticated user may run another training analysis this month under their plan's limit.
// @Tags         entitlements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Success      200 {object}  AnalysisLimitResponse "Entitlement decision"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/entitlements/analyses [get]
func CheckAnalysisLimitHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	response, err := analysisLimitDecision(c, user.ID)
	if err != nil {
		return err
	}

	metrics.RecordDecision("analyses", response.CanRunAnalysis)
	return c.JSON(http.StatusOK, response)
}

// SubmitAnalysisHandler godoc
// @Summary      Submit a training analysis
// @Description  Checks the plan's monthly analysis limit, records the analysis and queues it for the analysis worker. An over-quota request returns the entitlement decision with HTTP 200.
// @Tags         analyses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token for authentication. Replace <your_token_here> with a valid token."  default(Bearer <your_token_here>)
// @Param        submitAnalysisRequest  body  SubmitAnalysisRequest  true  "Analysis payload"
// @Success      200 {object}  AnalysisLimitResponse "Over quota, analysis not queued"
// @Success      202 {object}  SubmitAnalysisResponse "Analysis queued"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/analyses [post]
func SubmitAnalysisHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	var req SubmitAnalysisRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid analysis request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	discipline := models.AnalysisDiscipline(req.Discipline)
	if discipline != models.Dressage && discipline != models.Jumping {
		logger.Error("Unknown discipline.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "discipline must be DRESSAGE or JUMPING",
		}
	}

	decision, err := analysisLimitDecision(c, user.ID)
	if err != nil {
		return err
	}
	metrics.RecordDecision("analyses", decision.CanRunAnalysis)
	if !decision.CanRunAnalysis {
		logger.Warnf("Analysis limit reached for user %d on plan %s", user.ID, decision.PlanName)
		return c.JSON(http.StatusOK, decision)
	}

	analysis := models.Analysis{
		Discipline: discipline,
		Status:     models.AnalysisPending,
		Notes:      req.Notes,
		UserID:     user.ID,
		HorseID:    req.HorseID,
		DocumentID: req.DocumentID,
	}
	if err := db.Conn.Create(&analysis).Error; err != nil {
		logger.Errorf("Failed to create analysis: %v", err)
		return echo.ErrInternalServerError
	}

	publisher, err := queue.NewPublisher()
	if err != nil {
		logger.Errorf("Failed to connect to queue: %v", err)
		markAnalysisFailed(c, analysis.ID)
		return echo.ErrInternalServerError
	}
	defer publisher.Close()

	job := queue.AnalysisJob{
		AID:        analysis.AID.String(),
		UserID:     user.ID,
		Discipline: string(analysis.Discipline),
		DocumentID: req.DocumentID,
		HorseID:    req.HorseID,
		CreatedAt:  analysis.CreatedAt,
	}
	if err := publisher.PublishAnalysisJob(job); err != nil {
		logger.Errorf("Failed to publish analysis job: %v", err)
		markAnalysisFailed(c, analysis.ID)
		return echo.ErrInternalServerError
	}

	if err := db.Conn.Model(&analysis).Update("status", models.AnalysisQueued).Error; err != nil {
		logger.Errorf("Failed to update analysis status: %v", err)
	}

	metrics.AnalysisJobsPublished.Inc()
	return c.JSON(http.StatusAccepted, SubmitAnalysisResponse{
		AID:     analysis.AID.String(),
		Status:  string(models.AnalysisQueued),
		Message: "Analysis queued",
	})
}

func markAnalysisFailed(c echo.Context, analysisID uint) {
	if err := db.Conn.Model(&models.Analysis{}).
		Where("id = ?", analysisID).
		Update("status", models.AnalysisFailed).Error; err != nil {
		c.Logger().Errorf("Failed to mark analysis %d failed: %v", analysisID, err)
	}
}
