package export

import (
	"github.com/xuri/excelize/v2"

	"cohortsplit/internal"
)

// writeWorkbook saves the three tables as sheets of one .xlsx for spreadsheet
// consumers, mirroring the CSV contents cell for cell.
func writeWorkbook(path string, tables internal.Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		header  []string
		records [][]string
	}{
		{"Personal & Parent", personalHeader, personalRecords(tables.Personal)},
		{"Study & Support", supportHeader, supportRecords(tables.Support)},
		{"Engagement & Progress", engagementHeader, engagementRecords(tables.Engagement)},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return err
			}
		}
		for c, h := range sheet.header {
			cell, _ := excelize.CoordinatesToCellName(c+1, 1)
			_ = f.SetCellValue(sheet.name, cell, h)
		}
		for r, record := range sheet.records {
			for c, value := range record {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				_ = f.SetCellValue(sheet.name, cell, value)
			}
		}
	}

	return f.SaveAs(path)
}
