package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/utils"
)

type xlsxWriter struct{}

func (xlsxWriter) CanWrite(path string) bool { return hasExt(path, ".xlsx") }
func (xlsxWriter) exts() []string            { return []string{".xlsx"} }

// Write puts the frame on a sheet named after the page, header in row 1.
func (xlsxWriter) Write(path string, c *shape.Chart) error {
	fr := c.Frame()
	sheet := fr.Name
	if sheet == "" {
		sheet = "Sheet1"
	}
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}
	for i, h := range c.Header(fr) {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		_ = f.SetColWidth(sheet, colName(i+1), colName(i+1), 20)
	}
	for r, rec := range fr.Records {
		for i, v := range rec {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	if err := utils.EnsureDir(dirOf(path)); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
