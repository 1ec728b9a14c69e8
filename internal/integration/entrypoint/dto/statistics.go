// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/e-budgetmo/backend/internal/application/usecase/statistics"
)

// StatsSliceResponse is one slice of the monthly breakdown.
type StatsSliceResponse struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Value        float64 `json:"value"`
	Percent      float64 `json:"percent"`
	PercentLabel string  `json:"percentLabel"`
}

// MonthlyStatsResponse represents the statistics screen payload.
type MonthlyStatsResponse struct {
	Month            string               `json:"month"`
	Slices           []StatsSliceResponse `json:"slices"`
	RemainingBalance float64              `json:"remainingBalance"`
	IsEmpty          bool                 `json:"isEmpty"`
}

// ToMonthlyStatsResponse converts use case output to its DTO.
func ToMonthlyStatsResponse(year int, month time.Month, output *statistics.GetMonthlyStatsOutput) MonthlyStatsResponse {
	slices := make([]StatsSliceResponse, len(output.Slices))
	for i, slice := range output.Slices {
		slices[i] = StatsSliceResponse{
			Key:          slice.Key,
			Label:        slice.Label,
			Value:        slice.Value.InexactFloat64(),
			Percent:      slice.Percent,
			PercentLabel: slice.PercentLabel,
		}
	}
	return MonthlyStatsResponse{
		Month:            fmt.Sprintf("%04d-%02d", year, int(month)),
		Slices:           slices,
		RemainingBalance: output.RemainingBalance.InexactFloat64(),
		IsEmpty:          output.IsEmpty,
	}
}
