// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e-budgetmo/backend/internal/application/usecase/ledger"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
	"github.com/e-budgetmo/backend/internal/integration/entrypoint/dto"
)

// EntryController handles ledger endpoints.
type EntryController struct {
	appendUseCase    *ledger.AppendEntryUseCase
	aggregateUseCase *ledger.GetAggregateUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	appendUseCase *ledger.AppendEntryUseCase,
	aggregateUseCase *ledger.GetAggregateUseCase,
) *EntryController {
	return &EntryController{
		appendUseCase:    appendUseCase,
		aggregateUseCase: aggregateUseCase,
	}
}

// Append handles POST /entries requests.
func (c *EntryController) Append(ctx *gin.Context) {
	var req dto.AppendEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryBody),
		})
		return
	}

	input := ledger.AppendEntryInput{
		ID:       req.ID,
		Date:     req.Date,
		Type:     req.Type,
		Amount:   req.Amount.String(),
		Category: req.Category,
		Title:    req.Title,
		Note:     req.Note,
	}

	output, err := c.appendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var financeErr *domainerror.FinanceError
		if errors.As(err, &financeErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: financeErr.Message,
				Code:  string(financeErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to append entry",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// GetFinance handles GET /finance requests.
func (c *EntryController) GetFinance(ctx *gin.Context) {
	output, err := c.aggregateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve finance aggregate",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinanceAggregateResponse(output.Aggregate))
}
