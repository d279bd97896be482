// Package export renders a persisted plan as a spreadsheet.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tripbuddy/entities"
	"tripbuddy/pkg/plan/types"
)

// BuildWorkbook writes one sheet with the day-by-day schedule and one with
// the cost breakdown of the selection.
func BuildWorkbook(plan *entities.TripPlan, items []entities.ItineraryItem) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Itinerary"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Day", "Date", "Time", "Title", "Kind", "Cost", "Duration", "Status", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for row, it := range items {
		vals := []any{
			it.DayNumber, it.Date.Format("2006-01-02"), it.TimeOfDay, it.Title,
			it.Kind, it.Cost, it.Duration, it.Status, it.Notes,
		}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	const costs = "Cost Summary"
	if _, err := f.NewSheet(costs); err != nil {
		return nil, err
	}
	var sel types.OptimizationResult
	hasSel := plan.SelectionJSON != "" && json.Unmarshal([]byte(plan.SelectionJSON), &sel) == nil

	rows := [][]any{
		{"Destination", plan.Destination},
		{"Plan version", plan.Version},
		{"Budget status", plan.BudgetStatus},
		{"Total cost per person", plan.TotalCost},
	}
	if hasSel {
		rows = append(rows,
			[]any{"Flight", sel.Breakdown.Flight},
			[]any{"Hotel", sel.Breakdown.Hotel},
			[]any{"Activities", sel.Breakdown.Activity},
			[]any{"Meals & misc", sel.Breakdown.MealsMisc},
			[]any{"Budget remaining", sel.BudgetRemaining},
		)
	}
	for i, r := range rows {
		for col, v := range r {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := f.SetCellValue(costs, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Filename suggests a download name for the workbook.
func Filename(plan *entities.TripPlan) string {
	dest := plan.Destination
	if dest == "" {
		dest = "trip"
	}
	return fmt.Sprintf("%s-plan-v%d.xlsx", dest, plan.Version)
}
