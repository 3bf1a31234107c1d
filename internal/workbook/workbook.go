// Package workbook reads financial workbooks and extracts typed records from their sheets.
package workbook

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
)

// Workbook is a read-only view over a spreadsheet file. Rows return cell text as
// stored in the file: numbers and dates come back unformatted.
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) ([][]string, error)
	Close() error
}

// Open parses data as an .xlsx workbook, falling back to the legacy .xls format.
// Failure to open either way is reported as apperrors.ErrUnreadableWorkbook.
func Open(data []byte) (Workbook, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrUnreadableWorkbook)
	}

	f, errX := excelize.OpenReader(bytes.NewReader(data))
	if errX == nil {
		return &xlsxWorkbook{file: f}, nil
	}

	wb, errL := openLegacy(data)
	if errL == nil {
		return wb, nil
	}
	return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableWorkbook, errors.Join(errX, errL))
}

type xlsxWorkbook struct {
	file *excelize.File
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	return w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

type xlsWorkbook struct {
	names []string
	rows  map[string][][]string
}

// openLegacy reads every sheet eagerly; xlsReader keeps no handle to close.
func openLegacy(data []byte) (wb Workbook, err error) {
	// The BIFF parser can panic on truncated input.
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("xls: %v", r)
		}
	}()

	book, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	out := &xlsWorkbook{rows: make(map[string][][]string)}
	for _, sheet := range book.GetSheets() {
		name := sheet.GetName()
		var rows [][]string
		for _, row := range sheet.GetRows() {
			var cells []string
			for _, cell := range row.GetCols() {
				cells = append(cells, cell.GetString())
			}
			rows = append(rows, cells)
		}
		out.names = append(out.names, name)
		out.rows[name] = rows
	}
	return out, nil
}

func (w *xlsWorkbook) SheetNames() []string {
	return w.names
}

func (w *xlsWorkbook) Rows(sheet string) ([][]string, error) {
	rows, ok := w.rows[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s does not exist", sheet)
	}
	return rows, nil
}

func (w *xlsWorkbook) Close() error {
	return nil
}
