// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e-budgetmo/backend/internal/application/usecase/goal"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
	"github.com/e-budgetmo/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	adjustUseCase *goal.AdjustGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	adjustUseCase *goal.AdjustGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		adjustUseCase: adjustUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.CreateGoalInput{
		ID:           req.ID,
		Title:        req.Title,
		Category:     req.Category,
		Note:         req.Note,
		TargetAmount: req.TargetAmount.String(),
		DueDate:      req.DueDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.renderGoalError(ctx, err, "Failed to create goal")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Adjust handles POST /goals/:id/adjust requests.
func (c *GoalController) Adjust(ctx *gin.Context) {
	var req dto.AdjustGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.AdjustGoalInput{
		GoalID: ctx.Param("id"),
		Amount: req.Amount.String(),
		Action: req.Action,
	}

	output, err := c.adjustUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.renderGoalError(ctx, err, "Failed to adjust goal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests. Deletion is irreversible
// and requires ?confirm=true from the caller.
func (c *GoalController) Delete(ctx *gin.Context) {
	input := goal.DeleteGoalInput{
		GoalID:    ctx.Param("id"),
		Confirmed: ctx.Query("confirm") == "true",
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.renderGoalError(ctx, err, "Failed to delete goal")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// renderGoalError maps coded goal errors onto HTTP statuses.
func (c *GoalController) renderGoalError(ctx *gin.Context, err error, fallback string) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusBadRequest
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: fallback,
	})
}
