// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/e-budgetmo/backend/internal/application/usecase/statistics"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
	"github.com/e-budgetmo/backend/internal/integration/entrypoint/dto"
)

// StatisticsController handles the monthly breakdown endpoint.
type StatisticsController struct {
	statsUseCase *statistics.GetMonthlyStatsUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(statsUseCase *statistics.GetMonthlyStatsUseCase) *StatisticsController {
	return &StatisticsController{
		statsUseCase: statsUseCase,
	}
}

// GetMonthly handles GET /statistics?month=YYYY-MM requests. The month
// selector defaults to the current month, matching the screen's initial
// state.
func (c *StatisticsController) GetMonthly(ctx *gin.Context) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := ctx.Query("month"); raw != "" {
		selected, err := time.Parse("2006-01", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "month must be formatted as YYYY-MM",
				Code:  string(domainerror.ErrCodeInvalidStatsMonth),
			})
			return
		}
		year, month = selected.Year(), selected.Month()
	}

	input := statistics.GetMonthlyStatsInput{
		Year:  year,
		Month: month,
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatsResponse(year, month, output))
}
