package fileio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	excelize "github.com/xuri/excelize/v2"
)

// SheetName — имя единственного листа выходной книги.
const SheetName = "Sheet1"

func readXLSX(r io.Reader, headerRow int) (Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Table{}, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, err
	}
	h := pickHeader(rows, headerRow)
	return rowsToTable(rows, h, headerRow), nil
}

// ReadFile открывает файл по пути и читает первый лист.
func ReadFile(path string, headerRow int) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return ReadTable(f, path, headerRow)
}

// buildWorkbook собирает книгу: строка заголовков (жирная) + строки данных.
func buildWorkbook(header []string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if name := f.GetSheetName(0); name != SheetName {
		if err := f.SetSheetName(name, SheetName); err != nil {
			f.Close()
			return nil, err
		}
	}

	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &hdr); err != nil {
		f.Close()
		return nil, err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(SheetName, 1, 1, style)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return f, nil
}

// WriteXLSX пишет книгу по пути; существующий файл перезаписывается.
func WriteXLSX(path string, header []string, rows [][]any) error {
	f, err := buildWorkbook(header, rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// EncodeXLSX пишет ту же книгу в w (для HTTP-ответа).
func EncodeXLSX(w io.Writer, header []string, rows [][]any) error {
	f, err := buildWorkbook(header, rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
