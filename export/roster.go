// Package export renders the combined team list as a spreadsheet roster.
package export

import (
	"fmt"
	"io"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/xuri/excelize/v2"
)

const (
	RosterSheet       = "Teams"
	RosterContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var RosterHeader = []string{"Team Name", "Participant 1", "Participant 2", "Phone 1", "Phone 2"}

// RosterRows lists registered teams first, then leaderboard teams, one row
// each. Leaderboard teams that could not be enriched keep empty contact cells.
func RosterRows(data *models.AllData) [][]string {
	rows := make([][]string, 0, len(data.Participants)+len(data.Leaderboard))
	for _, p := range data.Participants {
		rows = append(rows, []string{p.DisplayTeamName(), p.Participant1, p.Participant2, p.Phone1, p.Phone2})
	}
	for _, l := range data.Leaderboard {
		rows = append(rows, []string{l.Name, deref(l.Participant1), deref(l.Participant2), deref(l.Phone1), deref(l.Phone2)})
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WriteRosterXLSX writes the roster workbook to w.
func WriteRosterXLSX(w io.Writer, data *models.AllData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RosterSheet); err != nil {
		return fmt.Errorf("failed to name roster sheet: %w", err)
	}

	if err := setRow(f, 1, RosterHeader); err != nil {
		return err
	}
	for i, row := range RosterRows(data) {
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(RosterSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("failed to style roster header: %w", err)
	}
	if err := f.SetColWidth(RosterSheet, "A", "E", 24); err != nil {
		return fmt.Errorf("failed to size roster columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write roster workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(RosterSheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write roster row %d: %w", rowNum, err)
	}
	return nil
}
