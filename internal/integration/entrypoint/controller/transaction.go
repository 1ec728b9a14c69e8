// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e-budgetmo/backend/internal/application/usecase/transaction"
	"github.com/e-budgetmo/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles the merged transaction view endpoint.
type TransactionController struct {
	mergeUseCase *transaction.MergeTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(mergeUseCase *transaction.MergeTransactionsUseCase) *TransactionController {
	return &TransactionController{
		mergeUseCase: mergeUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	output, err := c.mergeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to merge transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Entries))
}
