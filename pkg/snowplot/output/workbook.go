// Package output writes loaded model output to spreadsheet files.
package output

import (
	"errors"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

// doyColumn is the header of the derived day-of-year column.
const doyColumn = "doy"

// WriteWorkbook writes each loaded variant of data to its own sheet of an xlsx file.
// Sheets hold the date stamp, the day of year, and the numeric schema columns.
func WriteWorkbook(path string, data *models.DatasetData) error {
	if len(data.Variants) == 0 {
		return errors.New("no variants to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for _, vd := range data.Variants {
		if _, err := f.NewSheet(vd.Model.ID); err != nil {
			return fmt.Errorf("sheet %s: %w", vd.Model.ID, err)
		}
		if err := writeVariant(f, vd); err != nil {
			return fmt.Errorf("sheet %s: %w", vd.Model.ID, err)
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(data.Variants[0].Model.ID)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.SaveAs(path)
}

func writeVariant(f *excelize.File, vd models.VariantData) error {
	sheet := vd.Model.ID
	table := vd.Table
	valueCols := table.Schema.ValueColumns()

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, 0, len(valueCols)+2)
	header = append(header, table.Schema.DateColumn(), doyColumn)
	for _, name := range valueCols {
		header = append(header, name)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i := 0; i < table.Len(); i++ {
		row := make([]interface{}, 0, len(header))
		row = append(row, table.Stamps[i], vd.DOY.Days[i])
		for _, name := range valueCols {
			v := table.Columns[name][i]
			if math.IsNaN(v) {
				row = append(row, nil)
				continue
			}
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	ref, err := dataRange(table.Len(), len(header))
	if err != nil {
		return err
	}
	if err := sw.AddTable(&excelize.Table{
		Range:     ref,
		Name:      tableName(sheet),
		StyleName: "TableStyleLight9",
	}); err != nil {
		return err
	}

	return sw.Flush()
}
