// Package export turns an aggregated result set into the downloadable
// candidate performance workbook. It consumes the data it is handed; it never
// fetches anything itself.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"VinavalPortal/models"

	"github.com/xuri/excelize/v2"
)

const SheetName = "All Assessments"

const timestampLayout = "Jan 2, 2006 3:04:05 PM"

var ErrNoResults = errors.New("no results to export")

// Filename derives the workbook name from the candidate's display name with
// whitespace runs collapsed to underscores.
func Filename(name string) string {
	return strings.Join(strings.Fields(name), "_") + "_Full_Report.xlsx"
}

// BuildCandidateReport lays out the fixed header block, a spacer row, the
// column header row, and one row per result.
func BuildCandidateReport(user models.User, results []models.Result, generatedAt time.Time) (*excelize.File, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Candidate Performance Report"},
		{"Name", user.Name},
		{"Email", user.Email},
		{"Total Assessments", len(results)},
		{"Generated At", generatedAt.Format(timestampLayout)},
		{},
		{"Assessment Title", "Score", "Max Score", "Percentage", "Attempt", "Submitted At"},
	}

	for _, r := range results {
		rows = append(rows, []interface{}{
			r.AssessmentTitle,
			r.Score,
			r.MaxScore,
			fmt.Sprintf("%d%%", r.Percent()),
			r.Attempt(),
			r.GradedAt.Format(timestampLayout),
		})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("error addressing row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+1, err)
		}
	}

	return f, nil
}
